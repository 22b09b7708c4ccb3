package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrValidation     = errors.New("validation failed")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidPIN     = errors.New("invalid PIN")
	ErrSessionExpired = errors.New("session expired")
)

// ValidationError is a business-rule violation. Reason is shown to the
// operator verbatim. Two ValidationErrors match under errors.Is when they
// share a Code, so callers can test for a rule regardless of the detail text.
type ValidationError struct {
	Code   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is makes every ValidationError match ErrValidation and sentinels with the same Code
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	t, ok := target.(*ValidationError)
	return ok && t.Code != "" && t.Code == e.Code
}

// Withf returns a copy of the error carrying a more specific reason
func (e *ValidationError) Withf(format string, args ...any) *ValidationError {
	return &ValidationError{Code: e.Code, Field: e.Field, Reason: fmt.Sprintf(format, args...)}
}

// NewValidationError builds an ad-hoc validation error
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Code: field, Field: field, Reason: reason}
}

// NotFoundError reports an unknown entity id. It is distinct from a
// validation failure.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// Is makes every NotFoundError match ErrNotFound and sentinels of the same entity
func (e *NotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	t, ok := target.(*NotFoundError)
	return ok && t.Entity == e.Entity
}

// NotFound builds a NotFoundError for a concrete id
func NotFound(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsValidation reports whether err is a business-rule violation
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is an unknown-entity error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Not-found sentinels per entity
var (
	ErrBorrowerNotFound       = &NotFoundError{Entity: "Borrower"}
	ErrLoanNotFound           = &NotFoundError{Entity: "Loan"}
	ErrChitGroupNotFound      = &NotFoundError{Entity: "Chit group"}
	ErrLinkNotFound           = &NotFoundError{Entity: "Borrower-chit link"}
	ErrAdjustmentNotFound     = &NotFoundError{Entity: "Adjustment"}
	ErrIndividualChitNotFound = &NotFoundError{Entity: "Chit"}
	ErrScheduleLineNotFound   = &NotFoundError{Entity: "Schedule item"}
)

// Validation sentinels shared across ledgers
var (
	ErrInvalidPeriod     = &ValidationError{Code: "invalid_period", Field: "month", Reason: "Months must be in YYYY-MM format"}
	ErrAmountNotPositive = &ValidationError{Code: "amount_not_positive", Field: "amount", Reason: "Amount must be positive"}
)
