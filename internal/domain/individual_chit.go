package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxChitMonths bounds the length of an individual chit schedule
const MaxChitMonths = 120

var (
	ErrChitMonthsInvalid      = &ValidationError{Code: "chit_months_invalid", Field: "totalMonths", Reason: "Total months must be between 1 and 120"}
	ErrChitStartDateMissing   = &ValidationError{Code: "chit_start_date_missing", Field: "startDate", Reason: "Start date is required"}
	ErrChitAmountNegative     = &ValidationError{Code: "chit_amount_negative", Field: "monthlyAmounts", Reason: "Monthly amounts cannot be negative"}
	ErrPrizedMonthInvalid     = &ValidationError{Code: "prized_month_invalid", Field: "prizedMonth", Reason: "Prized month must fall within the chit duration"}
	ErrIndividualChitClosed   = &ValidationError{Code: "individual_chit_closed", Field: "status", Reason: "Chit is closed"}
	ErrScheduleLineSettled    = &ValidationError{Code: "schedule_line_settled", Field: "scheduleId", Reason: "Schedule item is already fully paid"}
	ErrNoInterestAvailable    = &ValidationError{Code: "no_interest_available", Field: "interestMonth", Reason: "No interest available"}
	ErrScheduleLoanMismatch   = &ValidationError{Code: "schedule_loan_mismatch", Field: "loanId", Reason: "Loan does not belong to the chit borrower"}
	ErrScheduleAmountTooLarge = &ValidationError{Code: "schedule_amount_too_large", Field: "amount", Reason: "Amount exceeds remaining due"}
)

// LineStatus is the derived settlement state of a schedule line
type LineStatus string

const (
	LineStatusPending  LineStatus = "Pending"
	LineStatusPartial  LineStatus = "Partial"
	LineStatusPaid     LineStatus = "Paid"
	LineStatusAdjusted LineStatus = "Adjusted"
)

// IndividualChit is a per-borrower chit with a pre-built monthly due
// schedule. Settlement of each line comes from cash payments and from
// adjustments drawn on the borrower's loan interest.
type IndividualChit struct {
	ID           int32            `json:"id"`
	BorrowerID   int32            `json:"borrowerId"`
	BorrowerName string           `json:"borrowerName"`
	ChitName     string           `json:"chitName"`
	TotalMonths  int32            `json:"totalMonths"`
	StartDate    time.Time        `json:"startDate"`
	PrizedMonth  *int32           `json:"prizedMonth,omitempty"`
	PrizeAmount  *decimal.Decimal `json:"prizeAmount,omitempty"`
	Status       ChitStatus       `json:"status"`
	Notes        *string          `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	Schedule     []*ScheduleLine  `json:"schedule,omitempty"`
}

func (c *IndividualChit) Validate() error {
	if strings.TrimSpace(c.ChitName) == "" {
		return ErrChitNameEmpty
	}
	if c.TotalMonths < 1 || c.TotalMonths > MaxChitMonths {
		return ErrChitMonthsInvalid
	}
	if c.StartDate.IsZero() {
		return ErrChitStartDateMissing
	}
	if c.PrizedMonth != nil && (*c.PrizedMonth < 1 || *c.PrizedMonth > c.TotalMonths) {
		return ErrPrizedMonthInvalid
	}
	return nil
}

// IsClosed reports whether the chit has been closed
func (c *IndividualChit) IsClosed() bool {
	return c.Status == ChitStatusClosed
}

// BuildSchedule lays out one line per month starting at StartDate.
// Months beyond the supplied amounts are due zero.
func (c *IndividualChit) BuildSchedule(monthlyAmounts []decimal.Decimal) []*ScheduleLine {
	lines := make([]*ScheduleLine, 0, c.TotalMonths)
	for i := 0; i < int(c.TotalMonths); i++ {
		due := decimal.Zero
		if i < len(monthlyAmounts) {
			due = RoundMoney(monthlyAmounts[i])
		}
		lines = append(lines, &ScheduleLine{
			ChitID:      c.ID,
			MonthNumber: int32(i + 1),
			DueDate:     c.StartDate.AddDate(0, i, 0),
			DueAmount:   due,
		})
	}
	return lines
}

// ScheduleLine is one month of an individual chit. CashPaid and AdjustedPaid
// are sums over the line's two ledgers, filled by the repository; the
// trailing wire fields are set by Refresh.
type ScheduleLine struct {
	ID           int32           `json:"id"`
	ChitID       int32           `json:"chitId"`
	MonthNumber  int32           `json:"monthNumber"`
	DueDate      time.Time       `json:"dueDate"`
	DueAmount    decimal.Decimal `json:"dueAmount"`
	CashPaid     decimal.Decimal `json:"cashPaid"`
	AdjustedPaid decimal.Decimal `json:"adjustedPaid"`
	LastPaidDate *time.Time      `json:"lastPaidDate,omitempty"`
	PaymentMode  *string         `json:"paymentMode,omitempty"`

	Paid          decimal.Decimal `json:"paidAmount"`
	Left          decimal.Decimal `json:"remaining"`
	PaymentStatus LineStatus      `json:"paymentStatus"`
}

// PaidAmount is everything settled against the line
func (l *ScheduleLine) PaidAmount() decimal.Decimal {
	return l.CashPaid.Add(l.AdjustedPaid)
}

// Remaining is the unsettled portion of the line, never negative
func (l *ScheduleLine) Remaining() decimal.Decimal {
	return MaxMoney(decimal.Zero, l.DueAmount.Sub(l.PaidAmount()))
}

// IsSettled reports whether nothing is left to pay on the line
func (l *ScheduleLine) IsSettled() bool {
	return l.PaidAmount().IsPositive() && IsNegligible(l.Remaining())
}

// Status derives the line state from its ledgers. A line settled without
// any cash is Adjusted.
func (l *ScheduleLine) Status() LineStatus {
	switch {
	case l.IsSettled() && l.CashPaid.IsZero():
		return LineStatusAdjusted
	case l.IsSettled():
		return LineStatusPaid
	case l.PaidAmount().IsPositive():
		return LineStatusPartial
	default:
		return LineStatusPending
	}
}

// Refresh recomputes the derived wire fields from the ledger sums
func (l *ScheduleLine) Refresh() {
	l.Paid = l.PaidAmount()
	l.Left = l.Remaining()
	l.PaymentStatus = l.Status()
}

// ScheduleLineDetail is a line joined with its chit for cross-chit listings
type ScheduleLineDetail struct {
	ScheduleLine
	BorrowerID   int32      `json:"borrowerId"`
	BorrowerName string     `json:"borrowerName"`
	ChitName     string     `json:"chitName"`
	ChitStatus   ChitStatus `json:"chitStatus"`
}

// ScheduleCashPayment is a cash payment toward a schedule line. Append-only.
type ScheduleCashPayment struct {
	ID          int32           `json:"id"`
	LineID      int32           `json:"scheduleId"`
	Amount      decimal.Decimal `json:"amount"`
	PaidDate    time.Time       `json:"paidDate"`
	PaymentMode *string         `json:"paymentMode,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ScheduleAdjustment settles part of a schedule line from a loan's interest
// for InterestMonth. Append-only.
type ScheduleAdjustment struct {
	ID             int32           `json:"id"`
	LineID         int32           `json:"scheduleId"`
	LoanID         int32           `json:"loanId"`
	InterestMonth  Period          `json:"interestMonth"`
	Amount         decimal.Decimal `json:"amount"`
	AdjustmentDate time.Time       `json:"adjustmentDate"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// OutOfPocketPayment is a line that was at least partly settled in cash
type OutOfPocketPayment struct {
	ScheduleLineDetail
	OutOfPocketAmount decimal.Decimal `json:"outOfPocketAmount"`
}

// ScheduleLineFilter narrows cross-chit line listings. Nil fields mean "any".
type ScheduleLineFilter struct {
	ChitStatus    *ChitStatus
	DueOnOrBefore *time.Time
}

// IndividualChitUpdate carries the editable header fields and new amounts
type IndividualChitUpdate struct {
	BorrowerName   string
	ChitName       string
	StartDate      time.Time
	PrizedMonth    *int32
	PrizeAmount    *decimal.Decimal
	Notes          *string
	MonthlyAmounts []decimal.Decimal
}

type IndividualChitRepository interface {
	// Create stores the chit and its schedule lines together
	Create(ctx context.Context, chit *IndividualChit, lines []*ScheduleLine) (*IndividualChit, error)
	// GetByID returns the chit with its schedule ordered by month number
	GetByID(ctx context.Context, id int32) (*IndividualChit, error)
	List(ctx context.Context, status *ChitStatus) ([]*IndividualChit, error)
	UpdateHeader(ctx context.Context, chit *IndividualChit) (*IndividualChit, error)
	UpdateLineDue(ctx context.Context, lineID int32, dueAmount decimal.Decimal) error
	Close(ctx context.Context, id int32) error
	GetLine(ctx context.Context, lineID int32) (*ScheduleLineDetail, error)
	ListLines(ctx context.Context, filter ScheduleLineFilter) ([]*ScheduleLineDetail, error)
	AddCashPayment(ctx context.Context, payment *ScheduleCashPayment) (*ScheduleCashPayment, error)
	AddAdjustment(ctx context.Context, adj *ScheduleAdjustment) (*ScheduleAdjustment, error)
}
