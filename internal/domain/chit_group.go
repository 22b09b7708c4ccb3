package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ChitStatus is the lifecycle state of a chit (group membership or individual schedule)
type ChitStatus string

const (
	ChitStatusActive ChitStatus = "Active"
	ChitStatusClosed ChitStatus = "Closed"
)

var (
	ErrChitNameEmpty          = &ValidationError{Code: "chit_name_empty", Field: "name", Reason: "Chit name is required"}
	ErrChitNameTaken          = &ValidationError{Code: "chit_name_taken", Field: "name", Reason: "A chit group with this name already exists"}
	ErrInstallmentInvalid     = &ValidationError{Code: "installment_invalid", Field: "monthlyInstallment", Reason: "monthly_installment must be positive"}
	ErrStartMonthInvalid      = &ValidationError{Code: "start_month_invalid", Field: "startMonth", Reason: "start_month must be in YYYY-MM format"}
	ErrClosedMonthInvalid     = &ValidationError{Code: "closed_month_invalid", Field: "closedMonth", Reason: "closed_month must be in YYYY-MM format"}
	ErrClosedMonthBeforeStart = &ValidationError{Code: "closed_month_before_start", Field: "closedMonth", Reason: "closed_month cannot be before start_month"}
	ErrChitAlreadyClosed      = &ValidationError{Code: "chit_already_closed", Field: "status", Reason: "Chit group is already closed"}
	ErrChitClosedForMonth     = &ValidationError{Code: "chit_closed_for_month", Field: "chitMonth", Reason: "Chit is closed"}
	ErrChitMonthBeforeStart   = &ValidationError{Code: "chit_month_before_start", Field: "chitMonth", Reason: "Chit month cannot be before start month"}
)

// ChitGroup is the operator's own membership in a chit fund: a fixed
// installment owed every period from StartMonth onward, and up to
// ClosedMonth once the membership is closed.
type ChitGroup struct {
	ID                 int32           `json:"id"`
	Name               string          `json:"name"`
	MonthlyInstallment decimal.Decimal `json:"monthlyInstallment"`
	StartMonth         Period          `json:"startMonth"`
	Status             ChitStatus      `json:"status"`
	ClosedMonth        *Period         `json:"closedMonth,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func (c *ChitGroup) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrChitNameEmpty
	}
	if !c.StartMonth.Valid() {
		return ErrStartMonthInvalid
	}
	if c.MonthlyInstallment.LessThanOrEqual(decimal.Zero) {
		return ErrInstallmentInvalid
	}
	return nil
}

// IsClosed reports whether the membership has been closed
func (c *ChitGroup) IsClosed() bool {
	return c.Status == ChitStatusClosed
}

// DueFor is the installment owed for a period: zero before StartMonth, zero
// after ClosedMonth once closed, the fixed installment otherwise.
func (c *ChitGroup) DueFor(p Period) decimal.Decimal {
	if p.Before(c.StartMonth) {
		return decimal.Zero
	}
	if c.IsClosed() && c.ClosedMonth != nil && p.After(*c.ClosedMonth) {
		return decimal.Zero
	}
	return c.MonthlyInstallment
}

// CheckMonth rejects periods no settlement may target: anything after the
// closed month of a closed chit, and anything before the start month.
func (c *ChitGroup) CheckMonth(p Period) error {
	if c.IsClosed() {
		if c.ClosedMonth == nil {
			return ErrChitClosedForMonth.Withf("Chit is closed. Cannot settle any month")
		}
		if p.After(*c.ClosedMonth) {
			return ErrChitClosedForMonth.Withf("Chit is closed. Cannot settle months after %s", *c.ClosedMonth)
		}
	}
	if p.Before(c.StartMonth) {
		return ErrChitMonthBeforeStart.Withf("Chit month cannot be before start month (%s)", c.StartMonth)
	}
	return nil
}

type ChitGroupRepository interface {
	// Create fails with ErrChitNameTaken when the name is already used
	Create(ctx context.Context, chit *ChitGroup) (*ChitGroup, error)
	GetByID(ctx context.Context, id int32) (*ChitGroup, error)
	List(ctx context.Context, status *ChitStatus) ([]*ChitGroup, error)
	Update(ctx context.Context, chit *ChitGroup) (*ChitGroup, error)
	Close(ctx context.Context, id int32, closedMonth Period) (*ChitGroup, error)
}
