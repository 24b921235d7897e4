package lending

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"libcatalog/internal/book"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Checkout flips the book to checked_out and opens a lending row in one
// transaction. The status flip is keyed on the expected prior status: of
// two simultaneous checkouts exactly one sees a row updated, the other
// gets ErrNotAvailable.
func (r *PostgresRepo) Checkout(ctx context.Context, isbn, userID string) (Lending, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return Lending{}, err
	}
	defer func() { _ = tx.Rollback(timeoutCtx) }()

	tag, err := tx.Exec(timeoutCtx,
		`UPDATE books SET status = $1, updated_at = NOW() WHERE isbn = $2 AND status = $3`,
		book.StatusCheckedOut, isbn, book.StatusAvailable)
	if err != nil {
		return Lending{}, err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(timeoutCtx,
			`SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`, isbn).Scan(&exists); err != nil {
			return Lending{}, err
		}
		if !exists {
			return Lending{}, book.ErrNotFound
		}
		return Lending{}, ErrNotAvailable
	}

	l := Lending{ID: uuid.New().String(), BookISBN: isbn, UserID: userID}
	err = tx.QueryRow(timeoutCtx,
		`INSERT INTO lendings (id, book_isbn, user_id, checked_out_at) VALUES ($1, $2, $3, NOW())
		 RETURNING checked_out_at`,
		l.ID, l.BookISBN, l.UserID).Scan(&l.CheckedOutAt)
	if err != nil {
		return Lending{}, err
	}

	if err := tx.Commit(timeoutCtx); err != nil {
		return Lending{}, fmt.Errorf("committing checkout: %w", err)
	}
	return l, nil
}

// Return closes the open lending row and flips the book back to available.
func (r *PostgresRepo) Return(ctx context.Context, isbn string) (Lending, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return Lending{}, err
	}
	defer func() { _ = tx.Rollback(timeoutCtx) }()

	var l Lending
	err = tx.QueryRow(timeoutCtx,
		`UPDATE lendings SET returned_at = NOW()
		 WHERE book_isbn = $1 AND returned_at IS NULL
		 RETURNING id, book_isbn, user_id, checked_out_at, returned_at`,
		isbn).Scan(&l.ID, &l.BookISBN, &l.UserID, &l.CheckedOutAt, &l.ReturnedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lending{}, ErrNotLent
		}
		return Lending{}, err
	}

	if _, err := tx.Exec(timeoutCtx,
		`UPDATE books SET status = $1, updated_at = NOW() WHERE isbn = $2`,
		book.StatusAvailable, isbn); err != nil {
		return Lending{}, err
	}

	if err := tx.Commit(timeoutCtx); err != nil {
		return Lending{}, fmt.Errorf("committing return: %w", err)
	}
	return l, nil
}

func (r *PostgresRepo) ListByISBN(ctx context.Context, isbn string) ([]Lending, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx,
		`SELECT id, book_isbn, user_id, checked_out_at, returned_at
		 FROM lendings WHERE book_isbn = $1 ORDER BY checked_out_at DESC`, isbn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lending
	for rows.Next() {
		var l Lending
		if err := rows.Scan(&l.ID, &l.BookISBN, &l.UserID, &l.CheckedOutAt, &l.ReturnedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
