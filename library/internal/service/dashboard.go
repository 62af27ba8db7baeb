package service

import (
	"context"
	"time"

	"github.com/Astemirdum/librarypro/library/internal/errs"
	"github.com/Astemirdum/librarypro/library/internal/model"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// PartitionRecords splits records by status derived at now, keeping order.
func PartitionRecords(recs []model.BorrowRecord, now time.Time) (model.BorrowPartition, model.BorrowCounts) {
	p := model.BorrowPartition{
		Active:   []model.BorrowedBook{},
		Overdue:  []model.BorrowedBook{},
		Returned: []model.BorrowedBook{},
	}
	for _, rec := range recs {
		b := model.BorrowedBook{
			BorrowRecord: rec,
			Status:       rec.StatusAt(now),
			DaysUntilDue: rec.DaysUntilDue(now),
			CanRenew:     rec.CanRenewAt(now),
		}
		switch b.Status {
		case model.StatusActive:
			p.Active = append(p.Active, b)
		case model.StatusOverdue:
			p.Overdue = append(p.Overdue, b)
		case model.StatusReturned:
			p.Returned = append(p.Returned, b)
		}
	}
	return p, model.BorrowCounts{
		Active:   len(p.Active),
		Overdue:  len(p.Overdue),
		Returned: len(p.Returned),
	}
}

func (s *Service) Dashboard(ctx context.Context, memberID string) (model.Dashboard, error) {
	var (
		member    model.Member
		records   []model.BorrowRecord
		favorites []model.Favorite
		stats     model.ReadingStats
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		member, err = s.repo.GetMember(gctx, memberID)
		// members without a stored profile can still borrow
		if errors.Is(err, errs.ErrMemberNotFound) {
			member, err = model.Member{ID: memberID}, nil
		}
		return err
	})
	gg.Go(func() (err error) {
		records, err = s.repo.ListBorrowRecords(gctx, memberID)
		return err
	})
	gg.Go(func() (err error) {
		favorites, err = s.repo.ListFavorites(gctx, memberID)
		return err
	})
	gg.Go(func() (err error) {
		stats, err = s.repo.GetReadingStats(gctx, memberID)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Dashboard{}, err
	}

	if favorites == nil {
		favorites = []model.Favorite{}
	}
	borrowed, counts := PartitionRecords(records, s.now())
	return model.Dashboard{
		Member:    member,
		Borrowed:  borrowed,
		Counts:    counts,
		Favorites: favorites,
		Stats:     stats,
	}, nil
}
