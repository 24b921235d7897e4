// Package metadata aggregates book metadata from external bibliographic
// sources into a single record. Providers are best-effort: a failed lookup
// yields an empty result, never an error the caller has to handle.
package metadata

import "context"

// PartialRecord is one source's view of a book. Pointer fields distinguish
// "not supplied" from a zero value; slices are treated as supplied when
// non-empty.
type PartialRecord struct {
	Title         *string
	Authors       []string
	Description   *string
	Categories    []string
	AverageRating *float64
	PublishedDate *string
	PageCount     *int
	PreviewLink   *string
	Publishers    []string
	CoverURL      *string
	Price         *float64
	InStock       *bool
}

// Result is the tagged outcome of a single provider lookup. Partial is nil
// when the source had nothing (not found, missing credentials, transport or
// parse failure); Err carries the underlying cause for logging only.
type Result struct {
	Source  string
	Partial *PartialRecord
	Err     error
}

// Empty reports whether the lookup produced no data.
func (r Result) Empty() bool { return r.Partial == nil }

// Provider translates an ISBN into one source's partial record.
// Implementations never propagate transport or parse failures; they return
// an empty Result with Err set for diagnostics.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, isbn string) Result
}

// Review is one source's rating summary for a book.
type Review struct {
	Source      string  `json:"source"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	URL         string  `json:"url"`
}

// ReviewSource fetches a rating summary from one external source.
// Failures and missing data are reported as an error; callers omit the
// source and move on.
type ReviewSource interface {
	Name() string
	Reviews(ctx context.Context, isbn string) (Review, error)
}

// AuthorProfile is a best-effort author description looked up by name.
type AuthorProfile struct {
	Name      string   `json:"name"`
	BirthDate string   `json:"birth_date,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Wikipedia string   `json:"wikipedia,omitempty"`
	PhotoURLs []string `json:"photo_urls,omitempty"`
}

// AuthorSource resolves an author name to a profile. Name lookup is
// inherently ambiguous; implementations take the first match.
type AuthorSource interface {
	AuthorInfo(ctx context.Context, name string) (AuthorProfile, error)
}

// Record is the merged, flattened aggregation result used to populate a
// catalogue entry.
type Record struct {
	ISBN          string   `json:"isbn"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	Categories    []string `json:"categories"`
	AverageRating float64  `json:"average_rating"`
	PublishedDate string   `json:"published_date"`
	PageCount     int      `json:"page_count"`
	PreviewLink   string   `json:"preview_link"`
	Publishers    []string `json:"publishers"`
	CoverURL      string   `json:"cover_url"`
	Price         float64  `json:"price"`
	InStock       bool     `json:"in_stock"`
}
