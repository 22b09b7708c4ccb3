package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentModeAdjustment marks synthetic payments recorded when loan interest
// is redirected to a chit schedule instead of arriving as cash
const PaymentModeAdjustment = "Adjustment"

var (
	ErrPaymentTotalMismatch    = &ValidationError{Code: "payment_total_mismatch", Field: "totalReceived", Reason: "Interest paid + Principal paid must equal Total received"}
	ErrPaymentAmountNegative   = &ValidationError{Code: "payment_amount_negative", Field: "amount", Reason: "Payment amounts cannot be negative"}
	ErrPaymentTotalNotPositive = &ValidationError{Code: "payment_total_not_positive", Field: "totalReceived", Reason: "Total received must be positive"}
	ErrPaymentExceedsPrincipal = &ValidationError{Code: "payment_exceeds_principal", Field: "principalPaid", Reason: "Principal paid exceeds outstanding principal"}
	ErrPaymentDateMissing      = &ValidationError{Code: "payment_date_missing", Field: "paymentDate", Reason: "Payment date is required"}
	ErrPaymentMonthInvalid     = &ValidationError{Code: "payment_interest_month_invalid", Field: "interestMonth", Reason: "Interest month must be in YYYY-MM format"}
	ErrPaymentModeReserved     = &ValidationError{Code: "payment_mode_reserved", Field: "paymentMode", Reason: "Payment mode Adjustment is reserved for chit adjustments"}
)

// Payment is an append-only receipt against a loan. InterestMonth is the
// accrual period the money satisfies, which need not be the calendar month
// it was paid in; back-payment of arrears assigns an earlier period.
type Payment struct {
	ID            int32           `json:"id"`
	LoanID        int32           `json:"loanId"`
	PaymentDate   time.Time       `json:"paymentDate"`
	InterestMonth Period          `json:"interestMonth"`
	TotalReceived decimal.Decimal `json:"totalReceived"`
	InterestPaid  decimal.Decimal `json:"interestPaid"`
	PrincipalPaid decimal.Decimal `json:"principalPaid"`
	PaymentMode   *string         `json:"paymentMode,omitempty"`
	Reference     *string         `json:"reference,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate enforces total = interest + principal within one cent
func (p *Payment) Validate() error {
	if !p.InterestMonth.Valid() {
		return ErrPaymentMonthInvalid
	}
	if p.PaymentDate.IsZero() {
		return ErrPaymentDateMissing
	}
	if p.InterestPaid.IsNegative() || p.PrincipalPaid.IsNegative() {
		return ErrPaymentAmountNegative
	}
	if p.TotalReceived.LessThanOrEqual(decimal.Zero) {
		return ErrPaymentTotalNotPositive
	}
	if !WithinEpsilon(p.InterestPaid.Add(p.PrincipalPaid), p.TotalReceived) {
		return ErrPaymentTotalMismatch
	}
	return nil
}

// IsAdjustment reports whether this is a synthetic interest-redirection payment
func (p *Payment) IsAdjustment() bool {
	return p.PaymentMode != nil && *p.PaymentMode == PaymentModeAdjustment
}

// PaymentDetail is a payment joined with its loan and borrower for listings
type PaymentDetail struct {
	Payment
	BorrowerName         string          `json:"borrowerName"`
	PrincipalGiven       decimal.Decimal `json:"principalGiven"`
	OutstandingPrincipal decimal.Decimal `json:"outstandingPrincipal"`
	MonthlyRate          decimal.Decimal `json:"monthlyRate"`
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) (*Payment, error)
	// ListByLoan returns every payment of a loan, newest payment date first
	ListByLoan(ctx context.Context, loanID int32) ([]*Payment, error)
	// SumInterestByBorrowerMonth totals interest paid for the period across
	// the borrower's Active loans only
	SumInterestByBorrowerMonth(ctx context.Context, borrowerID int32, month Period) (decimal.Decimal, error)
	// ListDetailsSince lists payments whose interest month is on or after from
	ListDetailsSince(ctx context.Context, from Period) ([]*PaymentDetail, error)
}
