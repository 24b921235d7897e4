package book

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no catalogue entry exists for an ISBN.
	ErrNotFound = errors.New("book not found")

	// ErrAlreadyExists is returned when registering an ISBN that is
	// already catalogued. ISBNs are unique and immutable.
	ErrAlreadyExists = errors.New("book already registered")
)

// Status is the single-copy availability state of a catalogued book.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusCheckedOut Status = "checked_out"
)

// Book is a catalogue entry. It is created from the aggregation result at
// registration time and afterwards mutated only by checkout/return
// transitions.
type Book struct {
	ISBN          string    `json:"isbn"`
	Title         string    `json:"title"`
	Authors       []string  `json:"authors"`
	Description   string    `json:"description,omitempty"`
	Categories    []string  `json:"categories,omitempty"`
	AverageRating float64   `json:"average_rating,omitempty"`
	PageCount     int       `json:"page_count,omitempty"`
	Publishers    []string  `json:"publishers,omitempty"`
	PublishedDate string    `json:"published_date,omitempty"`
	PreviewLink   string    `json:"preview_link,omitempty"`
	CoverURL      string    `json:"cover_url,omitempty"`
	Price         float64   `json:"price,omitempty"`
	InStock       bool      `json:"in_stock,omitempty"`
	QRCode        string    `json:"qr_code,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Query defines filters and pagination for listing the catalogue.
type Query struct {
	Q      string
	Status Status
	Limit  int
	Offset int
}
