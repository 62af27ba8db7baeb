package service_test

import (
	"context"
	"slices"
	"testing"

	"github.com/Astemirdum/librarypro/library/internal/errs"
	"github.com/Astemirdum/librarypro/library/internal/model"
	"github.com/Astemirdum/librarypro/library/internal/repository"
	"github.com/Astemirdum/librarypro/library/internal/service"
	"github.com/stretchr/testify/require"
)

func titles(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestFilterBooks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		query model.CatalogQuery
		want  []string
	}{
		{
			name:  "search author case-insensitive",
			query: model.CatalogQuery{Search: "ORWELL"},
			want:  []string{"1984"},
		},
		{
			name:  "search title substring",
			query: model.CatalogQuery{Search: "gats"},
			want:  []string{"The Great Gatsby"},
		},
		{
			name:  "genre",
			query: model.CatalogQuery{Genre: "Classic Literature"},
			want:  []string{"The Great Gatsby", "To Kill a Mockingbird"},
		},
		{
			name:  "all genres",
			query: model.CatalogQuery{Genre: model.AllGenres},
			want:  []string{"1984", "Pride and Prejudice", "The Great Gatsby", "To Kill a Mockingbird"},
		},
		{
			name:  "search and genre",
			query: model.CatalogQuery{Search: "orwell", Genre: "Romance"},
			want:  []string{},
		},
		{
			name:  "by author",
			query: model.CatalogQuery{Sort: model.SortByAuthor},
			want:  []string{"The Great Gatsby", "1984", "To Kill a Mockingbird", "Pride and Prejudice"},
		},
		{
			name:  "by year newest first",
			query: model.CatalogQuery{Sort: model.SortByYear},
			want:  []string{"To Kill a Mockingbird", "1984", "The Great Gatsby", "Pride and Prejudice"},
		},
		{
			name:  "by rating",
			query: model.CatalogQuery{Sort: model.SortByRating},
			want:  []string{"To Kill a Mockingbird", "1984", "Pride and Prejudice", "The Great Gatsby"},
		},
		{
			name:  "by availability",
			query: model.CatalogQuery{Sort: model.SortByAvailability},
			want:  []string{"Pride and Prejudice", "The Great Gatsby", "To Kill a Mockingbird", "1984"},
		},
		{
			name:  "unknown key sorts by title",
			query: model.CatalogQuery{Sort: "pages"},
			want:  []string{"1984", "Pride and Prejudice", "The Great Gatsby", "To Kill a Mockingbird"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			books := repository.SampleBooks()
			got := service.FilterBooks(books, tt.query)
			require.NotNil(t, got)
			require.Equal(t, tt.want, titles(got))
		})
	}
}

func TestFilterBooks_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	books := repository.SampleBooks()
	before := slices.Clone(books)

	_ = service.FilterBooks(books, model.CatalogQuery{Sort: model.SortByYear})
	require.Equal(t, before, books)
}

func TestFilterBooks_Idempotent(t *testing.T) {
	t.Parallel()
	q := model.CatalogQuery{Search: "a", Sort: model.SortByRating}
	once := service.FilterBooks(repository.SampleBooks(), q)
	twice := service.FilterBooks(once, q)
	require.Equal(t, once, twice)
}

func TestSortBooks_Stable(t *testing.T) {
	t.Parallel()
	books := []model.Book{
		{ID: "a", Title: "Alpha", Year: 2000},
		{ID: "b", Title: "Beta", Year: 1990},
		{ID: "c", Title: "Gamma", Year: 2000},
		{ID: "d", Title: "Delta", Year: 1990},
	}
	service.SortBooks(books, model.SortByYear)

	ids := make([]string, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	require.Equal(t, []string{"a", "c", "b", "d"}, ids)
}

func TestService_Home(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, repository.SampleSeed(testNow))

	home, err := svc.Home(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"To Kill a Mockingbird", "1984", "Pride and Prejudice"}, titles(home.Featured))
	require.Equal(t, 4, home.Titles)
	require.Equal(t, 18, home.CopiesTotal)
	require.Equal(t, 10, home.CopiesAvailable)
	require.Len(t, home.Stats, len(model.SiteStats))
}

func TestService_CatalogOptions(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, repository.SampleSeed(testNow))

	opts := svc.CatalogOptions(context.Background())
	require.Equal(t, model.AllGenres, opts.Genres[0])
	require.Len(t, opts.SortOptions, 5)

	opts.Genres[0] = "changed"
	require.Equal(t, model.AllGenres, svc.CatalogOptions(context.Background()).Genres[0])
}

func TestService_GetBook(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, repository.SampleSeed(testNow))
	ctx := context.Background()

	book, err := svc.GetBook(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "The Great Gatsby", book.Title)
	require.Len(t, book.Reviews, 2)
	require.Equal(t, 2, book.Summary.Total)
	require.Equal(t, 4.5, book.Summary.Average)

	_, err = svc.GetBook(ctx, "42")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_AddReview(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, repository.SampleSeed(testNow))
	ctx := context.Background()

	review, err := svc.AddReview(ctx, "3", model.ReviewRequest{User: "Ann", Rating: 2, Comment: "Bleak."})
	require.NoError(t, err)
	require.Equal(t, testNow, review.Date)

	book, err := svc.GetBook(ctx, "3")
	require.NoError(t, err)
	require.Len(t, book.Reviews, 2)
	require.Equal(t, 1, book.Summary.TwoStars)
	require.Equal(t, 3.0, book.Summary.Average)

	_, err = svc.AddReview(ctx, "42", model.ReviewRequest{User: "Ann", Rating: 5, Comment: "?"})
	require.ErrorIs(t, err, errs.ErrBookNotFound)
}

func TestSummarizeReviews(t *testing.T) {
	t.Parallel()
	require.Equal(t, model.ReviewSummary{}, service.SummarizeReviews(nil))

	sum := service.SummarizeReviews([]model.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}, {Rating: 0}})
	require.Equal(t, model.ReviewSummary{FiveStars: 1, FourStars: 2, Average: 4.3, Total: 3}, sum)
}
