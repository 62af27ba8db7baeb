package model_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/librarypro/library/internal/model"
	"github.com/stretchr/testify/require"
)

func TestBorrowRecord_StatusAt(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	returned := now.Add(-time.Hour)

	tests := []struct {
		name     string
		rec      model.BorrowRecord
		status   model.Status
		canRenew bool
		days     int
	}{
		{
			name:     "active",
			rec:      model.BorrowRecord{DueDate: now.Add(36 * time.Hour), RenewalsLeft: 1},
			status:   model.StatusActive,
			canRenew: true,
			days:     2,
		},
		{
			name:   "active no renewals",
			rec:    model.BorrowRecord{DueDate: now.Add(24 * time.Hour)},
			status: model.StatusActive,
			days:   1,
		},
		{
			name:     "due now is still active",
			rec:      model.BorrowRecord{DueDate: now, RenewalsLeft: 1},
			status:   model.StatusActive,
			canRenew: true,
			days:     0,
		},
		{
			name:   "overdue",
			rec:    model.BorrowRecord{DueDate: now.Add(-24 * time.Hour), RenewalsLeft: 2},
			status: model.StatusOverdue,
			days:   -1,
		},
		{
			name:   "returned wins over overdue",
			rec:    model.BorrowRecord{DueDate: now.Add(-72 * time.Hour), ReturnedAt: &returned, RenewalsLeft: 2},
			status: model.StatusReturned,
			days:   -3,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.status, tt.rec.StatusAt(now))
			require.Equal(t, tt.canRenew, tt.rec.CanRenewAt(now))
			require.Equal(t, tt.days, tt.rec.DaysUntilDue(now))
		})
	}
}

func TestOutcome_Succeeded(t *testing.T) {
	t.Parallel()
	for _, o := range []model.Outcome{model.OutcomeReserved, model.OutcomeFavoriteAdded, model.OutcomeFavoriteRemoved, model.OutcomeRenewed, model.OutcomeReturned} {
		require.True(t, o.Succeeded(), o)
	}
	for _, o := range []model.Outcome{model.OutcomeUnavailable, model.OutcomeRenewalNotEligible, model.OutcomeAlreadyReturned} {
		require.False(t, o.Succeeded(), o)
	}
}
