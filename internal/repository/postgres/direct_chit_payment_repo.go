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

const directChitPaymentSelect = `
	SELECT d.id, d.borrower_id, d.chit_id, d.chit_month, d.amount, d.payment_date,
	       d.payment_mode, d.reference, d.notes, d.created_at, b.name, c.name
	FROM direct_chit_payments d
	JOIN borrowers b ON b.id = d.borrower_id
	JOIN chit_groups c ON c.id = d.chit_id`

// DirectChitPaymentRepository implements domain.DirectChitPaymentRepository using PostgreSQL
type DirectChitPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewDirectChitPaymentRepository creates a new DirectChitPaymentRepository
func NewDirectChitPaymentRepository(pool *pgxpool.Pool) *DirectChitPaymentRepository {
	return &DirectChitPaymentRepository{pool: pool}
}

// Create appends a direct chit payment
func (r *DirectChitPaymentRepository) Create(ctx context.Context, payment *domain.DirectChitPayment) (*domain.DirectChitPayment, error) {
	db := conn(ctx, r.pool)
	var id int32
	err := db.QueryRow(ctx, `
		INSERT INTO direct_chit_payments (borrower_id, chit_id, chit_month, amount, payment_date, payment_mode, reference, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		payment.BorrowerID,
		payment.ChitID,
		payment.ChitMonth.String(),
		decimalToPgNumeric(payment.Amount),
		timeToPgDate(payment.PaymentDate),
		optionalText(payment.PaymentMode),
		optionalText(payment.Reference),
		optionalText(payment.Notes),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert direct chit payment: %w", err)
	}

	created, err := scanDirectChitPayment(db.QueryRow(ctx, directChitPaymentSelect+` WHERE d.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("reload direct chit payment %d: %w", id, err)
	}
	return created, err
}

// List returns payments matching the filter, newest first
func (r *DirectChitPaymentRepository) List(ctx context.Context, filter domain.DirectChitPaymentFilter) ([]*domain.DirectChitPayment, error) {
	var cond conditions
	if filter.BorrowerID != nil {
		cond.add("d.borrower_id = ?", *filter.BorrowerID)
	}
	if filter.ChitID != nil {
		cond.add("d.chit_id = ?", *filter.ChitID)
	}
	rows, err := conn(ctx, r.pool).Query(ctx,
		directChitPaymentSelect+cond.where()+` ORDER BY d.payment_date DESC, d.id DESC`, cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list direct chit payments: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.DirectChitPayment, 0)
	for rows.Next() {
		p, err := scanDirectChitPayment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// SumByChitMonth totals direct payments toward one chit period
func (r *DirectChitPaymentRepository) SumByChitMonth(ctx context.Context, borrowerID, chitID int32, chitMonth domain.Period) (decimal.Decimal, error) {
	return r.sum(ctx, `borrower_id = $1 AND chit_id = $2 AND chit_month = $3`, borrowerID, chitID, chitMonth.String())
}

// SumByChit totals direct payments toward any period of a chit
func (r *DirectChitPaymentRepository) SumByChit(ctx context.Context, borrowerID, chitID int32) (decimal.Decimal, error) {
	return r.sum(ctx, `borrower_id = $1 AND chit_id = $2`, borrowerID, chitID)
}

func (r *DirectChitPaymentRepository) sum(ctx context.Context, where string, args ...any) (decimal.Decimal, error) {
	var total pgtype.Numeric
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM direct_chit_payments WHERE `+where, args...,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum direct chit payments: %w", err)
	}
	return pgNumericToDecimal(total), nil
}

func scanDirectChitPayment(row pgx.Row) (*domain.DirectChitPayment, error) {
	var (
		p                      domain.DirectChitPayment
		chitMonth              string
		amount                 pgtype.Numeric
		paymentDate            pgtype.Date
		mode, reference, notes pgtype.Text
		createdAt              pgtype.Timestamptz
	)
	err := row.Scan(&p.ID, &p.BorrowerID, &p.ChitID, &chitMonth, &amount, &paymentDate,
		&mode, &reference, &notes, &createdAt, &p.BorrowerName, &p.ChitName)
	if err != nil {
		return nil, err
	}
	p.ChitMonth = domain.Period(chitMonth)
	p.Amount = pgNumericToDecimal(amount)
	p.PaymentDate = pgDateToTime(paymentDate)
	p.PaymentMode = pgTextPtr(mode)
	p.Reference = pgTextPtr(reference)
	p.Notes = pgTextPtr(notes)
	p.CreatedAt = createdAt.Time
	return &p, nil
}
