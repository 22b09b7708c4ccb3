package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DirectChitPayment is a cash payment toward a chit period, sourced outside
// the interest pool. Append-only.
type DirectChitPayment struct {
	ID           int32           `json:"id"`
	BorrowerID   int32           `json:"borrowerId"`
	ChitID       int32           `json:"chitId"`
	ChitMonth    Period          `json:"chitMonth"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentDate  time.Time       `json:"paymentDate"`
	PaymentMode  *string         `json:"paymentMode,omitempty"`
	Reference    *string         `json:"reference,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	BorrowerName string          `json:"borrowerName,omitempty"`
	ChitName     string          `json:"chitName,omitempty"`
}

// DirectChitPaymentFilter narrows listings. Nil fields mean "any".
type DirectChitPaymentFilter struct {
	BorrowerID *int32
	ChitID     *int32
}

type DirectChitPaymentRepository interface {
	Create(ctx context.Context, payment *DirectChitPayment) (*DirectChitPayment, error)
	List(ctx context.Context, filter DirectChitPaymentFilter) ([]*DirectChitPayment, error)
	SumByChitMonth(ctx context.Context, borrowerID, chitID int32, chitMonth Period) (decimal.Decimal, error)
	SumByChit(ctx context.Context, borrowerID, chitID int32) (decimal.Decimal, error)
}
