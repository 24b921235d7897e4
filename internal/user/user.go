package user

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrAlreadyExists is returned when a username is taken.
	ErrAlreadyExists = errors.New("username already taken")
)

// User is a borrower or staff account. Password holds the bcrypt hash and
// is never serialized.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
