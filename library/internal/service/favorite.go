package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/librarypro/library/internal/model"
)

func (s *Service) ToggleFavorite(ctx context.Context, memberID, bookID string) (model.ActionResult, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.ActionResult{}, err
	}
	added, err := s.repo.ToggleFavorite(ctx, memberID, bookID)
	if err != nil {
		return model.ActionResult{}, err
	}

	res := model.ActionResult{
		Outcome: model.OutcomeFavoriteRemoved,
		Title:   "Removed from Favorites",
		Message: fmt.Sprintf("%q has been removed from your favorites.", book.Title),
	}
	if added {
		res = model.ActionResult{
			Outcome: model.OutcomeFavoriteAdded,
			Title:   "Added to Favorites",
			Message: fmt.Sprintf("%q has been added to your favorites.", book.Title),
		}
	}
	s.notify(ctx, memberID, book.ID, res)
	return res, nil
}
