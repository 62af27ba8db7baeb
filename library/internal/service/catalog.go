package service

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/Astemirdum/librarypro/library/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterBooks returns the books matching q in q.Sort order. books is not
// modified. Ties keep their input order.
func FilterBooks(books []model.Book, q model.CatalogQuery) []model.Book {
	search := strings.ToLower(q.Search)
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if matchesSearch(b, search) && matchesGenre(b, q.Genre) {
			out = append(out, b)
		}
	}
	SortBooks(out, q.Sort)
	return out
}

func matchesSearch(b model.Book, lowerSearch string) bool {
	if lowerSearch == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), lowerSearch) ||
		strings.Contains(strings.ToLower(b.Author), lowerSearch)
}

func matchesGenre(b model.Book, genre string) bool {
	return genre == "" || genre == model.AllGenres || b.Genre == genre
}

// SortBooks sorts in place: title and author ascending by English collation,
// year, rating and availability descending. Unknown keys sort by title.
func SortBooks(books []model.Book, key model.SortKey) {
	switch key {
	case model.SortByYear:
		slices.SortStableFunc(books, func(a, b model.Book) int { return cmp.Compare(b.Year, a.Year) })
	case model.SortByRating:
		slices.SortStableFunc(books, func(a, b model.Book) int { return cmp.Compare(b.Rating, a.Rating) })
	case model.SortByAvailability:
		slices.SortStableFunc(books, func(a, b model.Book) int { return cmp.Compare(b.Available, a.Available) })
	case model.SortByAuthor:
		// collators are not safe for concurrent use
		c := collate.New(language.English)
		slices.SortStableFunc(books, func(a, b model.Book) int { return c.CompareString(a.Author, b.Author) })
	default:
		c := collate.New(language.English)
		slices.SortStableFunc(books, func(a, b model.Book) int { return c.CompareString(a.Title, b.Title) })
	}
}

func (s *Service) ListBooks(ctx context.Context, q model.CatalogQuery) (model.ListBooks, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return model.ListBooks{}, err
	}
	items := FilterBooks(books, q)
	return model.ListBooks{
		TotalElements: len(items),
		Items:         items,
	}, nil
}

func (s *Service) CatalogOptions(_ context.Context) model.CatalogOptions {
	return model.CatalogOptions{
		Genres:      slices.Clone(model.Genres),
		SortOptions: slices.Clone(model.SortOptions),
	}
}

const featuredCount = 3

func (s *Service) Home(ctx context.Context) (model.Home, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return model.Home{}, err
	}
	home := model.Home{
		Titles: len(books),
		Stats:  slices.Clone(model.SiteStats),
	}
	for _, b := range books {
		home.CopiesTotal += b.Total
		home.CopiesAvailable += b.Available
	}
	featured := FilterBooks(books, model.CatalogQuery{Sort: model.SortByRating})
	home.Featured = featured[:min(featuredCount, len(featured))]
	return home, nil
}

func (s *Service) GetBook(ctx context.Context, bookID string) (model.BookDetails, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BookDetails{}, err
	}
	reviews, err := s.repo.ListReviews(ctx, bookID)
	if err != nil {
		return model.BookDetails{}, err
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return model.BookDetails{
		Book:    book,
		Reviews: reviews,
		Summary: SummarizeReviews(reviews),
	}, nil
}
