package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrBookNotFound    = notFoundError("book not found")
	ErrRecordNotFound  = notFoundError("borrow record not found")
	ErrMemberNotFound  = notFoundError("member not found")
	ErrUnavailable     = errors.New("book unavailable")
	ErrNotEligible     = errors.New("renewal not eligible")
	ErrAlreadyReturned = errors.New("book already returned")
)

// notFoundError matches ErrNotFound under errors.Is.
type notFoundError string

func (e notFoundError) Error() string        { return string(e) }
func (e notFoundError) Is(target error) bool { return target == ErrNotFound }

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}
