package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, StatusOK},
		{"validation", domain.ErrInsufficientInterest, StatusValidation},
		{"wrapped validation", fmt.Errorf("create: %w", domain.ErrNotLinked), StatusValidation},
		{"not found", domain.NotFound("Loan", 3), StatusNotFound},
		{"infrastructure", errors.New("connection reset"), StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusOf(tt.err))
		})
	}
}

func TestRecord_CountsRuleViolations(t *testing.T) {
	before := testutil.ToFloat64(RuleViolations.WithLabelValues("test_op", "insufficient_interest"))
	okBefore := testutil.ToFloat64(LedgerOperations.WithLabelValues("test_op", StatusOK))

	Record("test_op", domain.ErrInsufficientInterest.Withf("Insufficient interest available. Available: ₹0.00, Requested: ₹10.00"))
	Record("test_op", nil)

	assert.Equal(t, before+1, testutil.ToFloat64(RuleViolations.WithLabelValues("test_op", "insufficient_interest")))
	assert.Equal(t, okBefore+1, testutil.ToFloat64(LedgerOperations.WithLabelValues("test_op", StatusOK)))
}
