package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/Astemirdum/librarypro/library/internal/errs"
	"github.com/Astemirdum/librarypro/library/internal/model"
	"go.uber.org/zap"
)

type memoryRepository struct {
	mu sync.RWMutex

	bookOrder []string
	books     map[string]model.Book
	reviews   map[string][]model.Review
	members   map[string]model.Member
	stats     map[string]model.ReadingStats
	records   map[string][]model.BorrowRecord
	favorites map[string][]string

	log *zap.Logger
}

var _ Repository = (*memoryRepository)(nil)

func NewMemoryRepository(seed Seed, log *zap.Logger) *memoryRepository {
	r := &memoryRepository{
		books:     make(map[string]model.Book, len(seed.Books)),
		reviews:   make(map[string][]model.Review),
		members:   make(map[string]model.Member, len(seed.Members)),
		stats:     make(map[string]model.ReadingStats, len(seed.Stats)),
		records:   make(map[string][]model.BorrowRecord),
		favorites: make(map[string][]string),
		log:       log.Named("repo"),
	}
	for _, b := range seed.Books {
		if _, ok := r.books[b.ID]; !ok {
			r.bookOrder = append(r.bookOrder, b.ID)
		}
		r.books[b.ID] = b
	}
	for _, rv := range seed.Reviews {
		r.reviews[rv.BookID] = append(r.reviews[rv.BookID], rv)
	}
	for _, m := range seed.Members {
		r.members[m.ID] = m
	}
	for id, st := range seed.Stats {
		r.stats[id] = st
	}
	for _, rec := range seed.Records {
		r.records[rec.MemberID] = append(r.records[rec.MemberID], rec)
	}
	for _, f := range seed.Favorites {
		r.favorites[f.MemberID] = append(r.favorites[f.MemberID], f.BookID)
	}
	return r
}

func (r *memoryRepository) ListBooks(_ context.Context) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]model.Book, 0, len(r.bookOrder))
	for _, id := range r.bookOrder {
		books = append(books, r.books[id])
	}
	return books, nil
}

func (r *memoryRepository) GetBook(_ context.Context, bookID string) (model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[bookID]
	if !ok {
		return model.Book{}, errs.ErrBookNotFound
	}
	return book, nil
}

func (r *memoryRepository) ListReviews(_ context.Context, bookID string) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.books[bookID]; !ok {
		return nil, errs.ErrBookNotFound
	}
	return slices.Clone(r.reviews[bookID]), nil
}

func (r *memoryRepository) AddReview(_ context.Context, review model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[review.BookID]; !ok {
		return errs.ErrBookNotFound
	}
	r.reviews[review.BookID] = append(r.reviews[review.BookID], review)
	return nil
}

func (r *memoryRepository) Reserve(_ context.Context, rec model.BorrowRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[rec.BookID]
	if !ok {
		return errs.ErrBookNotFound
	}
	if book.Available <= 0 {
		return errs.ErrUnavailable
	}
	book.Available--
	r.books[book.ID] = book
	r.records[rec.MemberID] = append(r.records[rec.MemberID], rec)
	r.log.Debug("Reserve", zap.String("book", book.ID), zap.Int("available", book.Available))
	return nil
}

func (r *memoryRepository) ListBorrowRecords(_ context.Context, memberID string) ([]model.BorrowRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]model.BorrowRecord, 0, len(r.records[memberID]))
	for _, rec := range r.records[memberID] {
		recs = append(recs, r.withBook(detached(rec)))
	}
	slices.SortStableFunc(recs, func(a, b model.BorrowRecord) int {
		return b.BorrowDate.Compare(a.BorrowDate)
	})
	return recs, nil
}

func (r *memoryRepository) UpdateBorrowRecord(_ context.Context, memberID, recordID string, fn UpdateFunc) (model.BorrowRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.update(memberID, recordID, fn, false)
}

func (r *memoryRepository) ReturnBorrowRecord(_ context.Context, memberID, recordID string, fn UpdateFunc) (model.BorrowRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.update(memberID, recordID, fn, true)
}

// update must be called with mu held.
func (r *memoryRepository) update(memberID, recordID string, fn UpdateFunc, giveBack bool) (model.BorrowRecord, error) {
	recs := r.records[memberID]
	idx := slices.IndexFunc(recs, func(rec model.BorrowRecord) bool { return rec.ID == recordID })
	if idx < 0 {
		return model.BorrowRecord{}, errs.ErrRecordNotFound
	}

	rec := detached(recs[idx])
	if err := fn(&rec); err != nil {
		return r.withBook(detached(recs[idx])), err
	}
	recs[idx] = rec

	if giveBack {
		if book, ok := r.books[rec.BookID]; ok && book.Available < book.Total {
			book.Available++
			r.books[book.ID] = book
		}
	}
	return r.withBook(detached(rec)), nil
}

// detached copies rec so that callers cannot reach stored state through ReturnedAt.
func detached(rec model.BorrowRecord) model.BorrowRecord {
	if rec.ReturnedAt != nil {
		t := *rec.ReturnedAt
		rec.ReturnedAt = &t
	}
	return rec
}

func (r *memoryRepository) withBook(rec model.BorrowRecord) model.BorrowRecord {
	if book, ok := r.books[rec.BookID]; ok {
		rec.Title = book.Title
		rec.Author = book.Author
	}
	return rec
}

func (r *memoryRepository) ToggleFavorite(_ context.Context, memberID, bookID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[bookID]; !ok {
		return false, errs.ErrBookNotFound
	}
	favs := r.favorites[memberID]
	if idx := slices.Index(favs, bookID); idx >= 0 {
		r.favorites[memberID] = slices.Delete(favs, idx, idx+1)
		return false, nil
	}
	r.favorites[memberID] = append(favs, bookID)
	return true, nil
}

func (r *memoryRepository) ListFavorites(_ context.Context, memberID string) ([]model.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	favs := make([]model.Favorite, 0, len(r.favorites[memberID]))
	for _, id := range r.favorites[memberID] {
		book, ok := r.books[id]
		if !ok {
			continue
		}
		favs = append(favs, model.Favorite{
			MemberID: memberID,
			BookID:   book.ID,
			Title:    book.Title,
			Author:   book.Author,
			Genre:    book.Genre,
			Rating:   book.Rating,
		})
	}
	return favs, nil
}

func (r *memoryRepository) GetMember(_ context.Context, memberID string) (model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.members[memberID]
	if !ok {
		return model.Member{}, errs.ErrMemberNotFound
	}
	return m, nil
}

func (r *memoryRepository) GetReadingStats(_ context.Context, memberID string) (model.ReadingStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats[memberID], nil
}
