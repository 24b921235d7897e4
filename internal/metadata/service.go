package metadata

import (
	"context"
	"fmt"
	"log"

	"libcatalog/internal/isbn"
)

// Service fans out to the configured providers and merges their partial
// records. The provider slice order is deployed policy: later providers win
// every field both sides supply. There is no caching and no retry; every
// call is a fresh best-effort fan-out.
type Service struct {
	providers []Provider
	reviews   []ReviewSource
	authors   AuthorSource
}

// NewService builds a metadata service from an ordered provider list,
// review sources queried independently of the main merge, and an optional
// author source.
func NewService(providers []Provider, reviews []ReviewSource, authors AuthorSource) *Service {
	return &Service{providers: providers, reviews: reviews, authors: authors}
}

// FallbackCoverURL derives a cover image URL purely from the ISBN, without
// any network call. Open Library serves a placeholder when it has no cover.
func FallbackCoverURL(id string) string {
	return fmt.Sprintf("https://covers.openlibrary.org/b/isbn/%s-L.jpg", id)
}

// Aggregate looks the ISBN up in every configured provider, in order, and
// merges the results. A malformed identifier is the only error: provider
// failures are logged and contribute an empty partial, so a total outage
// still yields an empty-but-well-formed record.
func (s *Service) Aggregate(ctx context.Context, rawISBN string) (Record, error) {
	id := isbn.Normalize(rawISBN)
	if !isbn.Validate(id) {
		return Record{}, fmt.Errorf("%w: %q", isbn.ErrInvalid, rawISBN)
	}

	results := make([]Result, 0, len(s.providers))
	for _, p := range s.providers {
		res := p.Lookup(ctx, id)
		if res.Err != nil {
			log.Printf("metadata lookup failed source=%s isbn=%s err=%v", p.Name(), id, res.Err)
		}
		results = append(results, res)
	}

	merged := Merge(results)

	rec := Record{
		ISBN:       id,
		Authors:    merged.Authors,
		Categories: merged.Categories,
		Publishers: merged.Publishers,
	}
	if merged.Title != nil {
		rec.Title = *merged.Title
	}
	if merged.Description != nil {
		rec.Description = *merged.Description
	}
	if merged.AverageRating != nil {
		rec.AverageRating = *merged.AverageRating
	}
	if merged.PublishedDate != nil {
		rec.PublishedDate = *merged.PublishedDate
	}
	if merged.PageCount != nil {
		rec.PageCount = *merged.PageCount
	}
	if merged.PreviewLink != nil {
		rec.PreviewLink = *merged.PreviewLink
	}
	if merged.CoverURL != nil && *merged.CoverURL != "" {
		rec.CoverURL = *merged.CoverURL
	} else {
		rec.CoverURL = FallbackCoverURL(id)
	}
	if merged.Price != nil {
		rec.Price = *merged.Price
	}
	if merged.InStock != nil {
		rec.InStock = *merged.InStock
	}
	return rec, nil
}

// Reviews queries each review source independently and returns whatever
// succeeded, in source order. Sources that fail are omitted; an empty slice
// is a valid, non-error result.
func (s *Service) Reviews(ctx context.Context, rawISBN string) ([]Review, error) {
	id := isbn.Normalize(rawISBN)
	if !isbn.Validate(id) {
		return nil, fmt.Errorf("%w: %q", isbn.ErrInvalid, rawISBN)
	}

	reviews := make([]Review, 0, len(s.reviews))
	for _, src := range s.reviews {
		rev, err := src.Reviews(ctx, id)
		if err != nil {
			log.Printf("review lookup failed source=%s isbn=%s err=%v", src.Name(), id, err)
			continue
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

// AuthorInfo resolves an author name to a profile via the configured source.
// The boolean is false when no source is configured or the lookup came up
// empty; a network failure is logged, not surfaced.
func (s *Service) AuthorInfo(ctx context.Context, name string) (AuthorProfile, bool) {
	if s.authors == nil || name == "" {
		return AuthorProfile{}, false
	}
	profile, err := s.authors.AuthorInfo(ctx, name)
	if err != nil {
		log.Printf("author lookup failed name=%q err=%v", name, err)
		return AuthorProfile{}, false
	}
	if profile.Name == "" {
		return AuthorProfile{}, false
	}
	return profile, true
}
