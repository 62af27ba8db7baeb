package model

import "time"

type Outcome string

const (
	OutcomeReserved           Outcome = "Reserved"
	OutcomeUnavailable        Outcome = "Unavailable"
	OutcomeFavoriteAdded      Outcome = "FavoriteAdded"
	OutcomeFavoriteRemoved    Outcome = "FavoriteRemoved"
	OutcomeRenewed            Outcome = "Renewed"
	OutcomeRenewalNotEligible Outcome = "RenewalNotEligible"
	OutcomeReturned           Outcome = "Returned"
	OutcomeAlreadyReturned    Outcome = "AlreadyReturned"
	OutcomeLoginSucceeded     Outcome = "LoginSucceeded"
	OutcomeRegistered         Outcome = "Registered"
)

// Succeeded reports whether the action changed state as requested.
func (o Outcome) Succeeded() bool {
	switch o {
	case OutcomeUnavailable, OutcomeRenewalNotEligible, OutcomeAlreadyReturned:
		return false
	}
	return true
}

// ActionResult is what a member action reports back; the caller decides how to
// surface it.
type ActionResult struct {
	Outcome Outcome       `json:"outcome"`
	Title   string        `json:"title"`
	Message string        `json:"message"`
	Record  *BorrowRecord `json:"record,omitempty"`
}

type Notification struct {
	MemberID string    `json:"username"`
	BookID   string    `json:"bookId,omitempty"`
	Outcome  Outcome   `json:"outcome"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}
