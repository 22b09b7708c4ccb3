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

const chitGroupColumns = `id, name, monthly_installment, start_month, status, closed_month, notes, created_at, updated_at`

// ChitGroupRepository implements domain.ChitGroupRepository using PostgreSQL
type ChitGroupRepository struct {
	pool *pgxpool.Pool
}

// NewChitGroupRepository creates a new ChitGroupRepository
func NewChitGroupRepository(pool *pgxpool.Pool) *ChitGroupRepository {
	return &ChitGroupRepository{pool: pool}
}

// Create inserts a chit group. A duplicate name is a validation failure.
func (r *ChitGroupRepository) Create(ctx context.Context, chit *domain.ChitGroup) (*domain.ChitGroup, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO chit_groups (name, monthly_installment, start_month, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+chitGroupColumns,
		chit.Name,
		decimalToPgNumeric(chit.MonthlyInstallment),
		chit.StartMonth.String(),
		string(domain.ChitStatusActive),
		optionalText(chit.Notes),
	)
	created, err := scanChitGroup(row)
	if isUniqueViolation(err) {
		return nil, domain.ErrChitNameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert chit group: %w", err)
	}
	return created, nil
}

// GetByID retrieves a chit group by its ID
func (r *ChitGroupRepository) GetByID(ctx context.Context, id int32) (*domain.ChitGroup, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `SELECT `+chitGroupColumns+` FROM chit_groups WHERE id = $1`, id)
	chit, err := scanChitGroup(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(domain.ErrChitGroupNotFound.Entity, id)
	}
	return chit, err
}

// List returns chit groups ordered by name, optionally by status
func (r *ChitGroupRepository) List(ctx context.Context, status *domain.ChitStatus) ([]*domain.ChitGroup, error) {
	var filter pgtype.Text
	if status != nil {
		filter = pgtype.Text{String: string(*status), Valid: true}
	}
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+chitGroupColumns+`
		FROM chit_groups
		WHERE $1::text IS NULL OR status = $1
		ORDER BY name`, filter)
	if err != nil {
		return nil, fmt.Errorf("list chit groups: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.ChitGroup, 0)
	for rows.Next() {
		chit, err := scanChitGroup(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, chit)
	}
	return result, rows.Err()
}

// Update replaces the editable fields of a chit group
func (r *ChitGroupRepository) Update(ctx context.Context, chit *domain.ChitGroup) (*domain.ChitGroup, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE chit_groups
		SET name = $2, monthly_installment = $3, start_month = $4, notes = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+chitGroupColumns,
		chit.ID,
		chit.Name,
		decimalToPgNumeric(chit.MonthlyInstallment),
		chit.StartMonth.String(),
		optionalText(chit.Notes),
	)
	updated, err := scanChitGroup(row)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, domain.NotFound(domain.ErrChitGroupNotFound.Entity, chit.ID)
	case isUniqueViolation(err):
		return nil, domain.ErrChitNameTaken
	case err != nil:
		return nil, fmt.Errorf("update chit group: %w", err)
	}
	return updated, nil
}

// Close marks the chit group Closed with its last payable month
func (r *ChitGroupRepository) Close(ctx context.Context, id int32, closedMonth domain.Period) (*domain.ChitGroup, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE chit_groups
		SET status = $2, closed_month = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+chitGroupColumns,
		id, string(domain.ChitStatusClosed), closedMonth.String())
	closed, err := scanChitGroup(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(domain.ErrChitGroupNotFound.Entity, id)
	}
	if err != nil {
		return nil, fmt.Errorf("close chit group: %w", err)
	}
	return closed, nil
}

func scanChitGroup(row pgx.Row) (*domain.ChitGroup, error) {
	var (
		chit                 domain.ChitGroup
		installment          pgtype.Numeric
		startMonth, status   string
		closedMonth, notes   pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&chit.ID, &chit.Name, &installment, &startMonth, &status,
		&closedMonth, &notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	chit.MonthlyInstallment = pgNumericToDecimal(installment)
	chit.StartMonth = domain.Period(startMonth)
	chit.Status = domain.ChitStatus(status)
	chit.ClosedMonth = pgPeriodPtr(closedMonth)
	chit.Notes = pgTextPtr(notes)
	chit.CreatedAt = createdAt.Time
	chit.UpdatedAt = updatedAt.Time
	return &chit, nil
}
