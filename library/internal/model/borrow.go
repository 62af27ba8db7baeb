package model

import (
	"math"
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusOverdue  Status = "overdue"
	StatusReturned Status = "returned"
)

// BorrowRecord is a loan of one copy of a book. Its status is derived from
// DueDate and ReturnedAt, never stored.
type BorrowRecord struct {
	ID           string     `json:"id" db:"id"`
	MemberID     string     `json:"-" db:"username"`
	BookID       string     `json:"bookId" db:"book_id"`
	Title        string     `json:"title" db:"title"`
	Author       string     `json:"author" db:"author"`
	BorrowDate   time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate      time.Time  `json:"dueDate" db:"due_date"`
	ReturnedAt   *time.Time `json:"returnedAt,omitempty" db:"returned_at"`
	RenewalsLeft int        `json:"renewalsLeft" db:"renewals_left"`
}

func (r BorrowRecord) StatusAt(now time.Time) Status {
	switch {
	case r.ReturnedAt != nil:
		return StatusReturned
	case now.After(r.DueDate):
		return StatusOverdue
	default:
		return StatusActive
	}
}

func (r BorrowRecord) CanRenewAt(now time.Time) bool {
	return r.StatusAt(now) == StatusActive && r.RenewalsLeft > 0
}

// DaysUntilDue rounds up to whole days and is negative once overdue.
func (r BorrowRecord) DaysUntilDue(now time.Time) int {
	return int(math.Ceil(r.DueDate.Sub(now).Hours() / 24))
}
