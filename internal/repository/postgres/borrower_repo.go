package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const borrowerColumns = `id, name, phone, created_at`

// BorrowerRepository implements domain.BorrowerRepository using PostgreSQL
type BorrowerRepository struct {
	pool *pgxpool.Pool
}

// NewBorrowerRepository creates a new BorrowerRepository
func NewBorrowerRepository(pool *pgxpool.Pool) *BorrowerRepository {
	return &BorrowerRepository{pool: pool}
}

// GetOrCreate returns the borrower with this name, inserting it when absent
func (r *BorrowerRepository) GetOrCreate(ctx context.Context, name string, phone *string) (*domain.Borrower, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO borrowers (name, phone) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING `+borrowerColumns,
		name, optionalText(phone))
	return scanBorrower(row)
}

// GetByID retrieves a borrower by its ID
func (r *BorrowerRepository) GetByID(ctx context.Context, id int32) (*domain.Borrower, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `SELECT `+borrowerColumns+` FROM borrowers WHERE id = $1`, id)
	b, err := scanBorrower(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(domain.ErrBorrowerNotFound.Entity, id)
	}
	return b, err
}

// GetByName retrieves a borrower by exact name
func (r *BorrowerRepository) GetByName(ctx context.Context, name string) (*domain.Borrower, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `SELECT `+borrowerColumns+` FROM borrowers WHERE name = $1`, name)
	b, err := scanBorrower(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(domain.ErrBorrowerNotFound.Entity, name)
	}
	return b, err
}

// List returns every borrower ordered by name
func (r *BorrowerRepository) List(ctx context.Context) ([]*domain.Borrower, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+borrowerColumns+` FROM borrowers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list borrowers: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.Borrower, 0)
	for rows.Next() {
		b, err := scanBorrower(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func scanBorrower(row pgx.Row) (*domain.Borrower, error) {
	var (
		b         domain.Borrower
		phone     pgtype.Text
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&b.ID, &b.Name, &phone, &createdAt); err != nil {
		return nil, err
	}
	b.Phone = pgTextPtr(phone)
	b.CreatedAt = createdAt.Time
	return &b, nil
}
