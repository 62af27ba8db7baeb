package handler

import (
	"context"

	"github.com/Astemirdum/librarypro/library/internal/model"
	"github.com/Astemirdum/librarypro/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	Home(ctx context.Context) (model.Home, error)
	CatalogOptions(ctx context.Context) model.CatalogOptions
	ListBooks(ctx context.Context, q model.CatalogQuery) (model.ListBooks, error)
	GetBook(ctx context.Context, bookID string) (model.BookDetails, error)
	ListReviews(ctx context.Context, bookID string) ([]model.Review, error)
	AddReview(ctx context.Context, bookID string, req model.ReviewRequest) (model.Review, error)
	Reserve(ctx context.Context, memberID, bookID string) (model.ActionResult, error)
	ToggleFavorite(ctx context.Context, memberID, bookID string) (model.ActionResult, error)
	Renew(ctx context.Context, memberID, recordID string) (model.ActionResult, error)
	Return(ctx context.Context, memberID, recordID string) (model.ActionResult, error)
	Dashboard(ctx context.Context, memberID string) (model.Dashboard, error)
}

var _ LibraryService = (*service.Service)(nil)
