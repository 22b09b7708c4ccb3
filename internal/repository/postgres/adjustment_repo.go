package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const adjustmentSelect = `
	SELECT a.id, a.borrower_id, a.interest_month, a.chit_id, a.chit_month, a.amount,
	       a.status, a.reversal_of_id, a.notes, a.created_at,
	       b.name, c.name, c.monthly_installment
	FROM adjustments a
	JOIN borrowers b ON b.id = a.borrower_id
	JOIN chit_groups c ON c.id = a.chit_id`

// AdjustmentRepository implements domain.AdjustmentRepository using PostgreSQL.
// Rows are never deleted; reversal only flips the status tag.
type AdjustmentRepository struct {
	pool *pgxpool.Pool
}

// NewAdjustmentRepository creates a new AdjustmentRepository
func NewAdjustmentRepository(pool *pgxpool.Pool) *AdjustmentRepository {
	return &AdjustmentRepository{pool: pool}
}

// Create appends an adjustment row
func (r *AdjustmentRepository) Create(ctx context.Context, adj *domain.Adjustment) (*domain.Adjustment, error) {
	status := adj.Status
	if status == "" {
		status = domain.AdjustmentStatusActive
	}
	var id int32
	err := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO adjustments (borrower_id, interest_month, chit_id, chit_month, amount, status, reversal_of_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		adj.BorrowerID,
		adj.InterestMonth.String(),
		adj.ChitID,
		adj.ChitMonth.String(),
		decimalToPgNumeric(adj.Amount),
		string(status),
		optionalInt4(adj.ReversalOfID),
		optionalText(adj.Notes),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert adjustment: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves an adjustment by its ID
func (r *AdjustmentRepository) GetByID(ctx context.Context, id int32) (*domain.Adjustment, error) {
	adj, err := scanAdjustment(conn(ctx, r.pool).QueryRow(ctx, adjustmentSelect+` WHERE a.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(domain.ErrAdjustmentNotFound.Entity, id)
	}
	return adj, err
}

// MarkReversed tags the adjustment REVERSED
func (r *AdjustmentRepository) MarkReversed(ctx context.Context, id int32) error {
	tag, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE adjustments SET status = $2 WHERE id = $1`, id, string(domain.AdjustmentStatusReversed))
	if err != nil {
		return fmt.Errorf("mark adjustment reversed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(domain.ErrAdjustmentNotFound.Entity, id)
	}
	return nil
}

// List returns adjustments matching the filter, newest first
func (r *AdjustmentRepository) List(ctx context.Context, filter domain.AdjustmentFilter) ([]*domain.Adjustment, error) {
	var cond conditions
	if filter.BorrowerID != nil {
		cond.add("a.borrower_id = ?", *filter.BorrowerID)
	}
	if filter.ChitID != nil {
		cond.add("a.chit_id = ?", *filter.ChitID)
	}
	if filter.Status != nil {
		cond.add("a.status = ?", string(*filter.Status))
	}
	rows, err := conn(ctx, r.pool).Query(ctx, adjustmentSelect+cond.where()+` ORDER BY a.created_at DESC, a.id DESC`, cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.Adjustment, 0)
	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, adj)
	}
	return result, rows.Err()
}

// SumActiveByInterestMonth totals ACTIVE rows drawn from a source period
func (r *AdjustmentRepository) SumActiveByInterestMonth(ctx context.Context, borrowerID int32, interestMonth domain.Period) (decimal.Decimal, error) {
	return r.sum(ctx, `borrower_id = $1 AND interest_month = $2`, borrowerID, interestMonth.String())
}

// SumActiveByChitMonth totals ACTIVE rows applied to a chit period
func (r *AdjustmentRepository) SumActiveByChitMonth(ctx context.Context, borrowerID, chitID int32, chitMonth domain.Period) (decimal.Decimal, error) {
	return r.sum(ctx, `borrower_id = $1 AND chit_id = $2 AND chit_month = $3`, borrowerID, chitID, chitMonth.String())
}

// SumActiveByChit totals ACTIVE rows applied to any period of a chit
func (r *AdjustmentRepository) SumActiveByChit(ctx context.Context, borrowerID, chitID int32) (decimal.Decimal, error) {
	return r.sum(ctx, `borrower_id = $1 AND chit_id = $2`, borrowerID, chitID)
}

// CountActiveByPair counts ACTIVE rows between a borrower and a chit
func (r *AdjustmentRepository) CountActiveByPair(ctx context.Context, borrowerID, chitID int32) (int64, error) {
	var count int64
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT COUNT(*) FROM adjustments WHERE borrower_id = $1 AND chit_id = $2 AND status = 'ACTIVE'`,
		borrowerID, chitID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count adjustments: %w", err)
	}
	return count, nil
}

func (r *AdjustmentRepository) sum(ctx context.Context, where string, args ...any) (decimal.Decimal, error) {
	var total pgtype.Numeric
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM adjustments WHERE status = 'ACTIVE' AND `+where, args...,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum adjustments: %w", err)
	}
	return pgNumericToDecimal(total), nil
}

func scanAdjustment(row pgx.Row) (*domain.Adjustment, error) {
	var (
		adj                      domain.Adjustment
		interestMonth, chitMonth string
		status                   string
		amount, installment      pgtype.Numeric
		reversalOf               pgtype.Int4
		notes                    pgtype.Text
		createdAt                pgtype.Timestamptz
	)
	err := row.Scan(&adj.ID, &adj.BorrowerID, &interestMonth, &adj.ChitID, &chitMonth, &amount,
		&status, &reversalOf, &notes, &createdAt, &adj.BorrowerName, &adj.ChitName, &installment)
	if err != nil {
		return nil, err
	}
	adj.InterestMonth = domain.Period(interestMonth)
	adj.ChitMonth = domain.Period(chitMonth)
	adj.Amount = pgNumericToDecimal(amount)
	adj.Status = domain.AdjustmentStatus(status)
	adj.ReversalOfID = pgInt4Ptr(reversalOf)
	adj.Notes = pgTextPtr(notes)
	adj.CreatedAt = createdAt.Time
	adj.MonthlyInstallment = pgNumericToDecimal(installment)
	return &adj, nil
}
