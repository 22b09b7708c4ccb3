package domain

import (
	"context"
	"strings"
	"time"
)

// MaxBorrowerNameLength bounds borrower names
const MaxBorrowerNameLength = 200

var (
	ErrBorrowerNameEmpty   = &ValidationError{Code: "borrower_name_empty", Field: "borrowerName", Reason: "Borrower name is required"}
	ErrBorrowerNameTooLong = &ValidationError{Code: "borrower_name_too_long", Field: "borrowerName", Reason: "Borrower name must be 200 characters or less"}
)

// Borrower is identified by a unique name. Borrowers are created implicitly
// the first time a loan or chit references a new name and are never deleted.
type Borrower struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeBorrowerName trims the name and validates its length
func NormalizeBorrowerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrBorrowerNameEmpty
	}
	if len(name) > MaxBorrowerNameLength {
		return "", ErrBorrowerNameTooLong
	}
	return name, nil
}

type BorrowerRepository interface {
	// GetOrCreate returns the borrower with this name, creating it when absent.
	// The phone is only recorded on creation.
	GetOrCreate(ctx context.Context, name string, phone *string) (*Borrower, error)
	GetByID(ctx context.Context, id int32) (*Borrower, error)
	GetByName(ctx context.Context, name string) (*Borrower, error)
	List(ctx context.Context) ([]*Borrower, error)
}
