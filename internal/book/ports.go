package book

import (
	"context"

	"libcatalog/internal/metadata"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// Repository defines the contract for catalogue storage.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	List(ctx context.Context, q Query) ([]Book, int, error)
}

// Aggregator merges external metadata for an ISBN. Satisfied by
// *metadata.Service.
type Aggregator interface {
	Aggregate(ctx context.Context, isbn string) (metadata.Record, error)
}

// CodeGenerator produces the scannable code artifact for an ISBN and
// returns its stable artifact name. Satisfied by *qr.Generator.
type CodeGenerator interface {
	Generate(isbn string) (string, error)
}
