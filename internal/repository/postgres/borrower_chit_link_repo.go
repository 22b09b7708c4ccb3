package postgres

import (
	"context"
	"fmt"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BorrowerChitLinkRepository implements domain.BorrowerChitLinkRepository using PostgreSQL
type BorrowerChitLinkRepository struct {
	pool *pgxpool.Pool
}

// NewBorrowerChitLinkRepository creates a new BorrowerChitLinkRepository
func NewBorrowerChitLinkRepository(pool *pgxpool.Pool) *BorrowerChitLinkRepository {
	return &BorrowerChitLinkRepository{pool: pool}
}

// Create links a borrower to a chit group
func (r *BorrowerChitLinkRepository) Create(ctx context.Context, link *domain.BorrowerChitLink) error {
	var createdAt pgtype.Timestamptz
	err := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO borrower_chit_links (borrower_id, chit_id, notes)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		link.BorrowerID, link.ChitID, optionalText(link.Notes),
	).Scan(&createdAt)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyLinked
	}
	if err != nil {
		return fmt.Errorf("insert link: %w", err)
	}
	link.CreatedAt = createdAt.Time
	return nil
}

// Delete removes a link; removing a missing link is not an error
func (r *BorrowerChitLinkRepository) Delete(ctx context.Context, borrowerID, chitID int32) error {
	_, err := conn(ctx, r.pool).Exec(ctx,
		`DELETE FROM borrower_chit_links WHERE borrower_id = $1 AND chit_id = $2`, borrowerID, chitID)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	return nil
}

// Exists reports whether the borrower is linked to the chit group
func (r *BorrowerChitLinkRepository) Exists(ctx context.Context, borrowerID, chitID int32) (bool, error) {
	var exists bool
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM borrower_chit_links WHERE borrower_id = $1 AND chit_id = $2)`,
		borrowerID, chitID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check link: %w", err)
	}
	return exists, nil
}

// List returns links joined with their borrower and chit group
func (r *BorrowerChitLinkRepository) List(ctx context.Context, filter domain.LinkFilter) ([]*domain.BorrowerChitLink, error) {
	var cond conditions
	if filter.BorrowerID != nil {
		cond.add("k.borrower_id = ?", *filter.BorrowerID)
	}
	if filter.ChitID != nil {
		cond.add("k.chit_id = ?", *filter.ChitID)
	}
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT k.borrower_id, k.chit_id, k.notes, k.created_at, b.name, b.phone,
		       c.name, c.monthly_installment, c.start_month, c.status, c.closed_month
		FROM borrower_chit_links k
		JOIN borrowers b ON b.id = k.borrower_id
		JOIN chit_groups c ON c.id = k.chit_id`+cond.where()+`
		ORDER BY c.name, b.name`, cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.BorrowerChitLink, 0)
	for rows.Next() {
		var (
			link                      domain.BorrowerChitLink
			notes, phone, closedMonth pgtype.Text
			createdAt                 pgtype.Timestamptz
			installment               pgtype.Numeric
			startMonth, status        string
		)
		err := rows.Scan(&link.BorrowerID, &link.ChitID, &notes, &createdAt, &link.BorrowerName, &phone,
			&link.ChitName, &installment, &startMonth, &status, &closedMonth)
		if err != nil {
			return nil, err
		}
		link.Notes = pgTextPtr(notes)
		link.CreatedAt = createdAt.Time
		link.BorrowerPhone = pgTextPtr(phone)
		link.MonthlyInstallment = pgNumericToDecimal(installment)
		link.StartMonth = domain.Period(startMonth)
		link.ChitStatus = domain.ChitStatus(status)
		link.ClosedMonth = pgPeriodPtr(closedMonth)
		result = append(result, &link)
	}
	return result, rows.Err()
}
