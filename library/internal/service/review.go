package service

import (
	"context"
	"math"

	"github.com/Astemirdum/librarypro/library/internal/model"
)

func SummarizeReviews(reviews []model.Review) model.ReviewSummary {
	var (
		sum     model.ReviewSummary
		ratings int
	)
	for _, r := range reviews {
		switch r.Rating {
		case 5:
			sum.FiveStars++
		case 4:
			sum.FourStars++
		case 3:
			sum.ThreeStars++
		case 2:
			sum.TwoStars++
		case 1:
			sum.OneStar++
		default:
			continue
		}
		ratings += r.Rating
		sum.Total++
	}
	if sum.Total > 0 {
		sum.Average = math.Round(float64(ratings)/float64(sum.Total)*10) / 10
	}
	return sum
}

func (s *Service) ListReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	reviews, err := s.repo.ListReviews(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return reviews, nil
}

func (s *Service) AddReview(ctx context.Context, bookID string, req model.ReviewRequest) (model.Review, error) {
	review := model.Review{
		ID:      s.newID(),
		BookID:  bookID,
		User:    req.User,
		Rating:  req.Rating,
		Comment: req.Comment,
		Date:    s.now().UTC(),
	}
	if err := s.repo.AddReview(ctx, review); err != nil {
		return model.Review{}, err
	}
	return review, nil
}
