package lending

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=lending

// Repository defines the contract for lending storage. Checkout and Return
// are the only writers of a book's availability status, and both guard the
// transition with a conditional update so two racing requests cannot both
// succeed.
type Repository interface {
	Checkout(ctx context.Context, isbn, userID string) (Lending, error)
	Return(ctx context.Context, isbn string) (Lending, error)
	ListByISBN(ctx context.Context, isbn string) ([]Lending, error)
}
