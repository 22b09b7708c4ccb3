package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const loanSelect = `
	SELECT l.id, l.borrower_id, b.name, b.phone, l.principal_given, l.outstanding_principal,
	       l.monthly_rate, l.given_date, l.interest_due_day, l.status, l.closed_date,
	       l.close_reason, l.document_received, l.document_type, l.notes,
	       l.created_at, l.updated_at
	FROM loans l
	JOIN borrowers b ON b.id = l.borrower_id`

// LoanRepository implements domain.LoanRepository using PostgreSQL
type LoanRepository struct {
	pool *pgxpool.Pool
}

// NewLoanRepository creates a new LoanRepository
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

// Create creates a new loan with its outstanding principal set to the amount given
func (r *LoanRepository) Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	var id int32
	err := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO loans (
			borrower_id, principal_given, outstanding_principal, monthly_rate,
			given_date, interest_due_day, status, document_received, document_type, notes
		) VALUES ($1, $2, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		loan.BorrowerID,
		decimalToPgNumeric(loan.PrincipalGiven),
		decimalToPgNumeric(loan.MonthlyRate),
		timeToPgDate(loan.GivenDate),
		loan.InterestDueDay,
		string(domain.LoanStatusActive),
		loan.DocumentReceived,
		optionalText(loan.DocumentType),
		optionalText(loan.Notes),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert loan: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves a loan with its borrower
func (r *LoanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	loan, err := scanLoan(conn(ctx, r.pool).QueryRow(ctx, loanSelect+` WHERE l.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(domain.ErrLoanNotFound.Entity, id)
	}
	return loan, err
}

// List returns loans matching the filter, most recently given first
func (r *LoanRepository) List(ctx context.Context, filter domain.LoanFilter) ([]*domain.Loan, error) {
	var cond conditions
	if filter.Status != nil {
		cond.add("l.status = ?", string(*filter.Status))
	}
	if filter.BorrowerID != nil {
		cond.add("l.borrower_id = ?", *filter.BorrowerID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		cond.add("(b.name ILIKE ? OR b.phone ILIKE ?)", "%"+search+"%")
	}
	query := loanSelect + cond.where() + " ORDER BY l.given_date DESC, l.id DESC"

	rows, err := conn(ctx, r.pool).Query(ctx, query, cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.Loan, 0)
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, loan)
	}
	return result, rows.Err()
}

// UpdateDetails edits the non-financial fields. A phone, when given, is
// stored on the borrower.
func (r *LoanRepository) UpdateDetails(ctx context.Context, id int32, update domain.LoanDetailsUpdate) (*domain.Loan, error) {
	db := conn(ctx, r.pool)
	var borrowerID int32
	err := db.QueryRow(ctx, `
		UPDATE loans
		SET interest_due_day = $2, document_received = $3, document_type = $4,
		    notes = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING borrower_id`,
		id, update.InterestDueDay, update.DocumentReceived,
		optionalText(update.DocumentType), optionalText(update.Notes),
	).Scan(&borrowerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(domain.ErrLoanNotFound.Entity, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update loan: %w", err)
	}

	if update.Phone != nil {
		if _, err := db.Exec(ctx, `UPDATE borrowers SET phone = $2 WHERE id = $1`, borrowerID, *update.Phone); err != nil {
			return nil, fmt.Errorf("update borrower phone: %w", err)
		}
	}
	return r.GetByID(ctx, id)
}

// DecrementOutstanding subtracts a principal payment from the running balance
func (r *LoanRepository) DecrementOutstanding(ctx context.Context, id int32, principalPaid decimal.Decimal) (*domain.Loan, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE loans
		SET outstanding_principal = outstanding_principal - $2, updated_at = NOW()
		WHERE id = $1`,
		id, decimalToPgNumeric(principalPaid))
	if err != nil {
		return nil, fmt.Errorf("decrement outstanding: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NotFound(domain.ErrLoanNotFound.Entity, id)
	}
	return r.GetByID(ctx, id)
}

// Close marks the loan Closed as of closedDate
func (r *LoanRepository) Close(ctx context.Context, id int32, closedDate time.Time, reason *string) (*domain.Loan, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE loans
		SET status = $2, closed_date = $3, close_reason = $4, updated_at = NOW()
		WHERE id = $1`,
		id, string(domain.LoanStatusClosed), timeToPgDate(closedDate), optionalText(reason))
	if err != nil {
		return nil, fmt.Errorf("close loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NotFound(domain.ErrLoanNotFound.Entity, id)
	}
	return r.GetByID(ctx, id)
}

// HasActiveByBorrower reports whether the borrower has any Active loan
func (r *LoanRepository) HasActiveByBorrower(ctx context.Context, borrowerID int32) (bool, error) {
	var exists bool
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM loans WHERE borrower_id = $1 AND status = $2)`,
		borrowerID, string(domain.LoanStatusActive),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check active loans: %w", err)
	}
	return exists, nil
}

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var (
		loan                   domain.Loan
		phone, reason, docType pgtype.Text
		notes                  pgtype.Text
		principal, outstanding pgtype.Numeric
		rate                   pgtype.Numeric
		givenDate, closedDate  pgtype.Date
		status                 string
		createdAt, updatedAt   pgtype.Timestamptz
	)
	err := row.Scan(
		&loan.ID, &loan.BorrowerID, &loan.BorrowerName, &phone,
		&principal, &outstanding, &rate, &givenDate, &loan.InterestDueDay,
		&status, &closedDate, &reason, &loan.DocumentReceived, &docType,
		&notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	loan.BorrowerPhone = pgTextPtr(phone)
	loan.PrincipalGiven = pgNumericToDecimal(principal)
	loan.OutstandingPrincipal = pgNumericToDecimal(outstanding)
	loan.MonthlyRate = pgNumericToDecimal(rate)
	loan.GivenDate = pgDateToTime(givenDate)
	loan.Status = domain.LoanStatus(status)
	loan.ClosedDate = pgDatePtr(closedDate)
	loan.CloseReason = pgTextPtr(reason)
	loan.DocumentType = pgTextPtr(docType)
	loan.Notes = pgTextPtr(notes)
	loan.CreatedAt = createdAt.Time
	loan.UpdatedAt = updatedAt.Time
	return &loan, nil
}
