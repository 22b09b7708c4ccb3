package postgres

import (
	"context"
	"fmt"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const paymentColumns = `p.id, p.loan_id, p.payment_date, p.interest_month, p.total_received,
	p.interest_paid, p.principal_paid, p.payment_mode, p.reference, p.notes, p.created_at`

// PaymentRepository implements domain.PaymentRepository using PostgreSQL
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Create appends a payment to the loan's history
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO payments AS p (
			loan_id, payment_date, interest_month, total_received, interest_paid,
			principal_paid, payment_mode, reference, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+paymentColumns,
		payment.LoanID,
		timeToPgDate(payment.PaymentDate),
		payment.InterestMonth.String(),
		decimalToPgNumeric(payment.TotalReceived),
		decimalToPgNumeric(payment.InterestPaid),
		decimalToPgNumeric(payment.PrincipalPaid),
		optionalText(payment.PaymentMode),
		optionalText(payment.Reference),
		optionalText(payment.Notes),
	)
	created, err := scanPayment(row)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return created, nil
}

// ListByLoan returns every payment of a loan, newest payment date first
func (r *PaymentRepository) ListByLoan(ctx context.Context, loanID int32) ([]*domain.Payment, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+paymentColumns+`
		FROM payments p
		WHERE p.loan_id = $1
		ORDER BY p.payment_date DESC, p.id DESC`, loanID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// SumInterestByBorrowerMonth totals interest paid for the period across the
// borrower's Active loans
func (r *PaymentRepository) SumInterestByBorrowerMonth(ctx context.Context, borrowerID int32, month domain.Period) (decimal.Decimal, error) {
	var total pgtype.Numeric
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT COALESCE(SUM(p.interest_paid), 0)
		FROM payments p
		JOIN loans l ON l.id = p.loan_id
		WHERE l.borrower_id = $1
		  AND l.status = $2
		  AND p.interest_month = $3`,
		borrowerID, string(domain.LoanStatusActive), month.String(),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum interest: %w", err)
	}
	return pgNumericToDecimal(total), nil
}

// ListDetailsSince lists payments whose interest month is on or after from,
// newest interest month first, joined with their loan and borrower
func (r *PaymentRepository) ListDetailsSince(ctx context.Context, from domain.Period) ([]*domain.PaymentDetail, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+paymentColumns+`, b.name, l.principal_given, l.outstanding_principal, l.monthly_rate
		FROM payments p
		JOIN loans l ON l.id = p.loan_id
		JOIN borrowers b ON b.id = l.borrower_id
		WHERE p.interest_month >= $1
		ORDER BY p.interest_month DESC, p.payment_date DESC, p.id DESC`, from.String())
	if err != nil {
		return nil, fmt.Errorf("list payment details: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.PaymentDetail, 0)
	for rows.Next() {
		var (
			detail                       domain.PaymentDetail
			principal, outstanding, rate pgtype.Numeric
		)
		p, err := scanPayment(rows, &detail.BorrowerName, &principal, &outstanding, &rate)
		if err != nil {
			return nil, err
		}
		detail.Payment = *p
		detail.PrincipalGiven = pgNumericToDecimal(principal)
		detail.OutstandingPrincipal = pgNumericToDecimal(outstanding)
		detail.MonthlyRate = pgNumericToDecimal(rate)
		result = append(result, &detail)
	}
	return result, rows.Err()
}

// scanPayment reads paymentColumns followed by any extra destinations
func scanPayment(row pgx.Row, extra ...any) (*domain.Payment, error) {
	var (
		p                          domain.Payment
		paymentDate                pgtype.Date
		interestMonth              string
		total, interest, principal pgtype.Numeric
		mode, reference, notes     pgtype.Text
		createdAt                  pgtype.Timestamptz
	)
	dest := []any{
		&p.ID, &p.LoanID, &paymentDate, &interestMonth, &total,
		&interest, &principal, &mode, &reference, &notes, &createdAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	p.PaymentDate = pgDateToTime(paymentDate)
	p.InterestMonth = domain.Period(interestMonth)
	p.TotalReceived = pgNumericToDecimal(total)
	p.InterestPaid = pgNumericToDecimal(interest)
	p.PrincipalPaid = pgNumericToDecimal(principal)
	p.PaymentMode = pgTextPtr(mode)
	p.Reference = pgTextPtr(reference)
	p.Notes = pgTextPtr(notes)
	p.CreatedAt = createdAt.Time
	return &p, nil
}
