package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotLinked                = &ValidationError{Code: "not_linked", Field: "chitId", Reason: "Borrower is not linked to this chit group"}
	ErrAlreadyLinked            = &ValidationError{Code: "already_linked", Field: "chitId", Reason: "Borrower is already linked to this chit"}
	ErrLinkHasActiveAdjustments = &ValidationError{Code: "link_has_active_adjustments", Field: "chitId", Reason: "Cannot unlink: active adjustments exist for this borrower-chit combination"}
)

// BorrowerChitLink permits adjustments and direct payments between one
// borrower and one chit group. The chit and borrower fields are read-side
// joins filled by listings.
type BorrowerChitLink struct {
	BorrowerID         int32           `json:"borrowerId"`
	ChitID             int32           `json:"chitId"`
	Notes              *string         `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	BorrowerName       string          `json:"borrowerName,omitempty"`
	BorrowerPhone      *string         `json:"borrowerPhone,omitempty"`
	ChitName           string          `json:"chitName,omitempty"`
	MonthlyInstallment decimal.Decimal `json:"monthlyInstallment"`
	StartMonth         Period          `json:"startMonth,omitempty"`
	ChitStatus         ChitStatus      `json:"chitStatus,omitempty"`
	ClosedMonth        *Period         `json:"closedMonth,omitempty"`
}

// LinkFilter narrows link listings. Nil fields mean "any".
type LinkFilter struct {
	BorrowerID *int32
	ChitID     *int32
}

type BorrowerChitLinkRepository interface {
	Create(ctx context.Context, link *BorrowerChitLink) error
	Delete(ctx context.Context, borrowerID, chitID int32) error
	Exists(ctx context.Context, borrowerID, chitID int32) (bool, error)
	List(ctx context.Context, filter LinkFilter) ([]*BorrowerChitLink, error)
}
