package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/librarypro/library/internal/errs"
	"github.com/Astemirdum/librarypro/library/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Reserve takes a copy of the book for the member. An exhausted book is an
// Unavailable outcome, not an error.
func (s *Service) Reserve(ctx context.Context, memberID, bookID string) (model.ActionResult, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.ActionResult{}, err
	}
	if !book.IsAvailable() {
		return s.unavailable(ctx, memberID, book), nil
	}

	now := s.now().UTC()
	rec := model.BorrowRecord{
		ID:           s.newID(),
		MemberID:     memberID,
		BookID:       book.ID,
		Title:        book.Title,
		Author:       book.Author,
		BorrowDate:   now,
		DueDate:      now.Add(s.policy.Period),
		RenewalsLeft: s.policy.MaxRenewals,
	}
	if err := s.repo.Reserve(ctx, rec); err != nil {
		// lost the last copy to a concurrent reservation
		if errors.Is(err, errs.ErrUnavailable) {
			return s.unavailable(ctx, memberID, book), nil
		}
		return model.ActionResult{}, err
	}

	res := model.ActionResult{
		Outcome: model.OutcomeReserved,
		Title:   "Book Reserved",
		Message: fmt.Sprintf("%q has been reserved for you. Please pick it up within 3 days.", book.Title),
		Record:  &rec,
	}
	s.log.Info("reserved", zap.String("member", memberID), zap.String("book", book.ID), zap.String("record", rec.ID))
	s.notify(ctx, memberID, book.ID, res)
	return res, nil
}

func (s *Service) unavailable(ctx context.Context, memberID string, book model.Book) model.ActionResult {
	res := model.ActionResult{
		Outcome: model.OutcomeUnavailable,
		Title:   "Not Available",
		Message: "This book is currently out of stock. You can add it to your wishlist.",
	}
	s.notify(ctx, memberID, book.ID, res)
	return res
}

// RenewRecord extends an active loan with renewals left by period.
func RenewRecord(rec *model.BorrowRecord, now time.Time, period time.Duration) error {
	if !rec.CanRenewAt(now) {
		return errs.ErrNotEligible
	}
	rec.DueDate = rec.DueDate.Add(period)
	rec.RenewalsLeft--
	return nil
}

// ReturnRecord marks an active or overdue loan returned at now.
func ReturnRecord(rec *model.BorrowRecord, now time.Time) error {
	if rec.StatusAt(now) == model.StatusReturned {
		return errs.ErrAlreadyReturned
	}
	rec.ReturnedAt = &now
	return nil
}

func (s *Service) Renew(ctx context.Context, memberID, recordID string) (model.ActionResult, error) {
	if !validRecordID(recordID) {
		return model.ActionResult{}, errs.ErrRecordNotFound
	}
	now := s.now().UTC()
	rec, err := s.repo.UpdateBorrowRecord(ctx, memberID, recordID, func(rec *model.BorrowRecord) error {
		return RenewRecord(rec, now, s.policy.Period)
	})
	switch {
	case errors.Is(err, errs.ErrNotEligible):
		res := model.ActionResult{
			Outcome: model.OutcomeRenewalNotEligible,
			Title:   "Renewal Not Available",
			Message: renewalRefusal(rec, now),
			Record:  &rec,
		}
		s.notify(ctx, memberID, rec.BookID, res)
		return res, nil
	case err != nil:
		return model.ActionResult{}, err
	}

	res := model.ActionResult{
		Outcome: model.OutcomeRenewed,
		Title:   "Loan Renewed",
		Message: fmt.Sprintf("%q is now due on %s.", rec.Title, rec.DueDate.Format(time.DateOnly)),
		Record:  &rec,
	}
	s.notify(ctx, memberID, rec.BookID, res)
	return res, nil
}

func renewalRefusal(rec model.BorrowRecord, now time.Time) string {
	switch rec.StatusAt(now) {
	case model.StatusOverdue:
		return fmt.Sprintf("%q is overdue and can no longer be renewed.", rec.Title)
	case model.StatusReturned:
		return fmt.Sprintf("%q has already been returned.", rec.Title)
	default:
		return fmt.Sprintf("%q has no renewals left.", rec.Title)
	}
}

func (s *Service) Return(ctx context.Context, memberID, recordID string) (model.ActionResult, error) {
	if !validRecordID(recordID) {
		return model.ActionResult{}, errs.ErrRecordNotFound
	}
	now := s.now().UTC()
	rec, err := s.repo.ReturnBorrowRecord(ctx, memberID, recordID, func(rec *model.BorrowRecord) error {
		return ReturnRecord(rec, now)
	})
	switch {
	case errors.Is(err, errs.ErrAlreadyReturned):
		res := model.ActionResult{
			Outcome: model.OutcomeAlreadyReturned,
			Title:   "Already Returned",
			Message: fmt.Sprintf("%q has already been returned.", rec.Title),
			Record:  &rec,
		}
		return res, nil
	case err != nil:
		return model.ActionResult{}, err
	}

	res := model.ActionResult{
		Outcome: model.OutcomeReturned,
		Title:   "Book Returned",
		Message: fmt.Sprintf("Thank you for returning %q.", rec.Title),
		Record:  &rec,
	}
	s.notify(ctx, memberID, rec.BookID, res)
	return res, nil
}

func (s *Service) ListBorrowRecords(ctx context.Context, memberID string) ([]model.BorrowRecord, error) {
	return s.repo.ListBorrowRecords(ctx, memberID)
}
