package lending

import (
	"errors"
	"time"
)

var (
	// ErrNotAvailable is returned when checking out a book that is
	// already checked out.
	ErrNotAvailable = errors.New("book not available")

	// ErrNotLent is returned when returning a book with no open lending.
	ErrNotLent = errors.New("book is not checked out")
)

// Lending is one checkout of a book by a borrower. ReturnedAt is nil while
// the book is out; at most one open lending exists per book.
type Lending struct {
	ID           string     `json:"id"`
	BookISBN     string     `json:"book_isbn"`
	UserID       string     `json:"user_id"`
	CheckedOutAt time.Time  `json:"checked_out_at"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
}
