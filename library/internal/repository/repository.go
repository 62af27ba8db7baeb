package repository

import (
	"context"

	"github.com/Astemirdum/librarypro/library/internal/model"
)

// UpdateFunc mutates a borrow record inside the store's critical section.
// Returning an error discards the change.
type UpdateFunc func(rec *model.BorrowRecord) error

type Repository interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, bookID string) (model.Book, error)

	ListReviews(ctx context.Context, bookID string) ([]model.Review, error)
	AddReview(ctx context.Context, review model.Review) error

	// Reserve takes one available copy of rec.BookID and stores rec in a
	// single step. It fails with errs.ErrUnavailable when no copy is left.
	Reserve(ctx context.Context, rec model.BorrowRecord) error
	ListBorrowRecords(ctx context.Context, memberID string) ([]model.BorrowRecord, error)
	UpdateBorrowRecord(ctx context.Context, memberID, recordID string, fn UpdateFunc) (model.BorrowRecord, error)
	// ReturnBorrowRecord is UpdateBorrowRecord that also gives the copy back.
	ReturnBorrowRecord(ctx context.Context, memberID, recordID string, fn UpdateFunc) (model.BorrowRecord, error)

	ToggleFavorite(ctx context.Context, memberID, bookID string) (added bool, err error)
	ListFavorites(ctx context.Context, memberID string) ([]model.Favorite, error)

	GetMember(ctx context.Context, memberID string) (model.Member, error)
	GetReadingStats(ctx context.Context, memberID string) (model.ReadingStats, error)
}
