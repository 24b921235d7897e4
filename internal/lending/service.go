package lending

import "context"

// Service provides checkout/return business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Checkout lends the single copy of a book to a borrower.
func (s *Service) Checkout(ctx context.Context, isbn, userID string) (Lending, error) {
	return s.repo.Checkout(ctx, isbn, userID)
}

// Return closes the open lending for a book.
func (s *Service) Return(ctx context.Context, isbn string) (Lending, error) {
	return s.repo.Return(ctx, isbn)
}

// History lists all lendings of a book, newest first.
func (s *Service) History(ctx context.Context, isbn string) ([]Lending, error) {
	return s.repo.ListByISBN(ctx, isbn)
}
