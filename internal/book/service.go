package book

import (
	"context"
	"fmt"
)

// Service provides catalogue business logic.
type Service struct {
	repo       Repository
	aggregator Aggregator
	codes      CodeGenerator
}

// NewService creates a new catalogue service.
func NewService(repo Repository, aggregator Aggregator, codes CodeGenerator) *Service {
	return &Service{repo: repo, aggregator: aggregator, codes: codes}
}

// Register catalogues a book by ISBN: it aggregates metadata from the
// configured sources, generates the scannable code artifact and persists
// the record as available. A malformed ISBN surfaces before any network
// call; total provider failure still registers an empty-but-well-formed
// record. Store failures propagate and nothing is committed.
func (s *Service) Register(ctx context.Context, rawISBN string) (Book, error) {
	rec, err := s.aggregator.Aggregate(ctx, rawISBN)
	if err != nil {
		return Book{}, err
	}

	qrName, err := s.codes.Generate(rec.ISBN)
	if err != nil {
		return Book{}, fmt.Errorf("generating code for %s: %w", rec.ISBN, err)
	}

	b := Book{
		ISBN:          rec.ISBN,
		Title:         rec.Title,
		Authors:       rec.Authors,
		Description:   rec.Description,
		Categories:    rec.Categories,
		AverageRating: rec.AverageRating,
		PageCount:     rec.PageCount,
		Publishers:    rec.Publishers,
		PublishedDate: rec.PublishedDate,
		PreviewLink:   rec.PreviewLink,
		CoverURL:      rec.CoverURL,
		Price:         rec.Price,
		InStock:       rec.InStock,
		QRCode:        qrName,
		Status:        StatusAvailable,
	}
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// GetByISBN returns a catalogue entry.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// List returns catalogue entries matching the query.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, q)
}
