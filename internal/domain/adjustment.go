package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentStatus tags a ledger row. Rows are never deleted; a reversed row
// keeps its data and only changes tag.
type AdjustmentStatus string

const (
	AdjustmentStatusActive   AdjustmentStatus = "ACTIVE"
	AdjustmentStatusReversed AdjustmentStatus = "REVERSED"
)

var (
	ErrNoActiveLoans             = &ValidationError{Code: "no_active_loans", Field: "borrowerId", Reason: "Borrower has no active loans"}
	ErrInsufficientInterest      = &ValidationError{Code: "insufficient_interest", Field: "amount", Reason: "Insufficient interest available"}
	ErrChitMonthFullyPaid        = &ValidationError{Code: "chit_month_fully_paid", Field: "chitMonth", Reason: "Chit month is already fully paid"}
	ErrAmountExceedsRemaining    = &ValidationError{Code: "amount_exceeds_remaining", Field: "amount", Reason: "Amount exceeds remaining due"}
	ErrAdjustmentAlreadyReversed = &ValidationError{Code: "adjustment_already_reversed", Field: "status", Reason: "Adjustment is already reversed"}
)

// Adjustment moves value from a borrower's interest income for InterestMonth
// to the chit obligation for ChitMonth without cash changing hands.
// The net effect of the ledger is the sum of its ACTIVE rows.
type Adjustment struct {
	ID                 int32            `json:"id"`
	BorrowerID         int32            `json:"borrowerId"`
	InterestMonth      Period           `json:"interestMonth"`
	ChitID             int32            `json:"chitId"`
	ChitMonth          Period           `json:"chitMonth"`
	Amount             decimal.Decimal  `json:"amount"`
	Status             AdjustmentStatus `json:"status"`
	ReversalOfID       *int32           `json:"reversalOfId,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	BorrowerName       string           `json:"borrowerName,omitempty"`
	ChitName           string           `json:"chitName,omitempty"`
	MonthlyInstallment decimal.Decimal  `json:"monthlyInstallment"`
}

// IsActive reports whether the row counts toward ledger sums
func (a *Adjustment) IsActive() bool {
	return a.Status == AdjustmentStatusActive
}

// Reversal builds the compensating entry for a: same borrower, chit and
// amount, with the interest and chit periods swapped, linked back to a.
func (a *Adjustment) Reversal(notes string) *Adjustment {
	reversalNotes := fmt.Sprintf("Reversal of adjustment #%d", a.ID)
	if notes != "" {
		reversalNotes += " - " + notes
	}
	originalID := a.ID
	return &Adjustment{
		BorrowerID:    a.BorrowerID,
		InterestMonth: a.ChitMonth,
		ChitID:        a.ChitID,
		ChitMonth:     a.InterestMonth,
		Amount:        a.Amount,
		Status:        AdjustmentStatusActive,
		ReversalOfID:  &originalID,
		Notes:         &reversalNotes,
	}
}

// AdjustmentFilter narrows adjustment listings. Nil fields mean "any".
type AdjustmentFilter struct {
	BorrowerID *int32
	ChitID     *int32
	Status     *AdjustmentStatus
}

type AdjustmentRepository interface {
	Create(ctx context.Context, adj *Adjustment) (*Adjustment, error)
	GetByID(ctx context.Context, id int32) (*Adjustment, error)
	MarkReversed(ctx context.Context, id int32) error
	List(ctx context.Context, filter AdjustmentFilter) ([]*Adjustment, error)
	// SumActiveByInterestMonth totals ACTIVE rows drawn from a source period
	SumActiveByInterestMonth(ctx context.Context, borrowerID int32, interestMonth Period) (decimal.Decimal, error)
	// SumActiveByChitMonth totals ACTIVE rows applied to a chit period
	SumActiveByChitMonth(ctx context.Context, borrowerID, chitID int32, chitMonth Period) (decimal.Decimal, error)
	SumActiveByChit(ctx context.Context, borrowerID, chitID int32) (decimal.Decimal, error)
	CountActiveByPair(ctx context.Context, borrowerID, chitID int32) (int64, error)
}
