package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMatching(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrInsufficientInterest.Withf("Only ₹10.00 left"))

	assert.True(t, errors.Is(err, ErrInsufficientInterest), "matches the sentinel by code")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrChitMonthFullyPaid))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsValidation(err))
	assert.Equal(t, "wrapped: Only ₹10.00 left", err.Error())

	var ve *ValidationError
	if assert.True(t, errors.As(err, &ve)) {
		assert.Equal(t, "amount", ve.Field)
	}
}

func TestNotFoundErrorMatching(t *testing.T) {
	err := NotFound(ErrLoanNotFound.Entity, int32(7))

	assert.Equal(t, "Loan 7 not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, ErrLoanNotFound))
	assert.False(t, errors.Is(err, ErrBorrowerNotFound))
	assert.False(t, IsValidation(err))
	assert.True(t, IsNotFound(fmt.Errorf("get loan: %w", err)))
	assert.Equal(t, "Loan not found", ErrLoanNotFound.Error())
}
