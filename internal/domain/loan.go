package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan. Closed is terminal.
type LoanStatus string

const (
	LoanStatusActive LoanStatus = "Active"
	LoanStatusClosed LoanStatus = "Closed"
)

// DefaultInterestDueDay is used when a loan is recorded without a due day
const DefaultInterestDueDay = 5

var (
	ErrLoanPrincipalInvalid = &ValidationError{Code: "loan_principal_invalid", Field: "principalGiven", Reason: "Principal must be positive"}
	ErrLoanRateInvalid      = &ValidationError{Code: "loan_rate_invalid", Field: "monthlyRate", Reason: "Monthly rate must be positive"}
	ErrLoanDueDayInvalid    = &ValidationError{Code: "loan_due_day_invalid", Field: "interestDueDay", Reason: "Interest due day must be between 1 and 31"}
	ErrLoanGivenDateMissing = &ValidationError{Code: "loan_given_date_missing", Field: "givenDate", Reason: "Given date is required"}
	ErrLoanAlreadyClosed    = &ValidationError{Code: "loan_already_closed", Field: "status", Reason: "Loan is already closed"}
	ErrLoanClosed           = &ValidationError{Code: "loan_closed", Field: "loanId", Reason: "Loan is closed"}
	ErrCloseBeforeGiven     = &ValidationError{Code: "loan_close_before_given", Field: "closedDate", Reason: "Closed date cannot be before the given date"}
)

// Loan is money lent to one borrower at a flat monthly rate (percent).
// OutstandingPrincipal is the only cached aggregate in the system: it always
// equals PrincipalGiven minus every principal payment recorded against the loan.
type Loan struct {
	ID                   int32           `json:"id"`
	BorrowerID           int32           `json:"borrowerId"`
	BorrowerName         string          `json:"borrowerName"`
	BorrowerPhone        *string         `json:"borrowerPhone,omitempty"`
	PrincipalGiven       decimal.Decimal `json:"principalGiven"`
	OutstandingPrincipal decimal.Decimal `json:"outstandingPrincipal"`
	MonthlyRate          decimal.Decimal `json:"monthlyRate"`
	GivenDate            time.Time       `json:"givenDate"`
	InterestDueDay       int32           `json:"interestDueDay"`
	Status               LoanStatus      `json:"status"`
	ClosedDate           *time.Time      `json:"closedDate,omitempty"`
	CloseReason          *string         `json:"closeReason,omitempty"`
	DocumentReceived     bool            `json:"documentReceived"`
	DocumentType         *string         `json:"documentType,omitempty"`
	Notes                *string         `json:"notes,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

func (l *Loan) Validate() error {
	if l.PrincipalGiven.LessThanOrEqual(decimal.Zero) {
		return ErrLoanPrincipalInvalid
	}
	if l.MonthlyRate.LessThanOrEqual(decimal.Zero) {
		return ErrLoanRateInvalid
	}
	if l.InterestDueDay < 1 || l.InterestDueDay > 31 {
		return ErrLoanDueDayInvalid
	}
	if l.GivenDate.IsZero() {
		return ErrLoanGivenDateMissing
	}
	return nil
}

// IsActive reports whether the loan still accrues interest
func (l *Loan) IsActive() bool {
	return l.Status == LoanStatusActive
}

// StartPeriod is the first accrual period: the month the money was given
func (l *Loan) StartPeriod() Period {
	return PeriodOf(l.GivenDate)
}

// ClosedPeriod returns the month the loan was closed in, if it is closed
func (l *Loan) ClosedPeriod() (Period, bool) {
	if l.ClosedDate == nil {
		return "", false
	}
	return PeriodOf(*l.ClosedDate), true
}

// LoanDetail is a loan with its derived standing as of a given date
type LoanDetail struct {
	*Loan
	AsOfMonth        Period          `json:"asOfMonth"`
	InterestDueMonth decimal.Decimal `json:"interestDueMonth"`
	PendingInterest  decimal.Decimal `json:"pendingInterest"`
	NextDueDate      *time.Time      `json:"nextDueDate,omitempty"`
}

// LoanFilter narrows loan listings. Zero values mean "no filter".
type LoanFilter struct {
	Status     *LoanStatus
	BorrowerID *int32
	Search     string // substring match on borrower name or phone
}

// LoanDetailsUpdate carries the fields editable after disbursement.
// Principal, rate and outstanding balance are never editable.
type LoanDetailsUpdate struct {
	Phone            *string
	InterestDueDay   int32
	DocumentReceived bool
	DocumentType     *string
	Notes            *string
}

// OutstandingReplay compares the cached outstanding principal with the value
// re-derived by replaying every principal payment
type OutstandingReplay struct {
	LoanID     int32           `json:"loanId"`
	Recorded   decimal.Decimal `json:"recorded"`
	Replayed   decimal.Decimal `json:"replayed"`
	Drift      decimal.Decimal `json:"drift"`
	Consistent bool            `json:"consistent"`
}

type LoanRepository interface {
	Create(ctx context.Context, loan *Loan) (*Loan, error)
	GetByID(ctx context.Context, id int32) (*Loan, error)
	List(ctx context.Context, filter LoanFilter) ([]*Loan, error)
	UpdateDetails(ctx context.Context, id int32, update LoanDetailsUpdate) (*Loan, error)
	// DecrementOutstanding subtracts a principal payment from the running balance
	DecrementOutstanding(ctx context.Context, id int32, principalPaid decimal.Decimal) (*Loan, error)
	Close(ctx context.Context, id int32, closedDate time.Time, reason *string) (*Loan, error)
	HasActiveByBorrower(ctx context.Context, borrowerID int32) (bool, error)
}
