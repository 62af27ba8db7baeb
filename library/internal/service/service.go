package service

import (
	"context"
	"time"

	"github.com/Astemirdum/librarypro/library/internal/model"
	libraryRepo "github.com/Astemirdum/librarypro/library/internal/repository"
	"go.uber.org/zap"
)

const (
	DefaultLoanPeriod  = 14 * 24 * time.Hour
	DefaultMaxRenewals = 2
)

type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}

type LoanPolicy struct {
	Period      time.Duration
	MaxRenewals int
}

type Service struct {
	log      *zap.Logger
	repo     libraryRepo.Repository
	notifier Notifier
	policy   LoanPolicy
	now      func() time.Time
	newID    func() string
}

type Option func(s *Service)

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

func WithLoanPolicy(p LoanPolicy) Option {
	return func(s *Service) {
		if p.Period > 0 {
			s.policy.Period = p.Period
		}
		if p.MaxRenewals >= 0 {
			s.policy.MaxRenewals = p.MaxRenewals
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func NewService(repo libraryRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log.Named("service"),
		repo: repo,
		policy: LoanPolicy{
			Period:      DefaultLoanPeriod,
			MaxRenewals: DefaultMaxRenewals,
		},
		now:   time.Now,
		newID: newUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// notify never fails the action that triggered it.
func (s *Service) notify(ctx context.Context, memberID, bookID string, res model.ActionResult) {
	if s.notifier == nil {
		return
	}
	n := model.Notification{
		MemberID: memberID,
		BookID:   bookID,
		Outcome:  res.Outcome,
		Message:  res.Message,
		At:       s.now(),
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.log.Warn("notify", zap.String("outcome", string(res.Outcome)), zap.Error(err))
	}
}
