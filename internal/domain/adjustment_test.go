package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustmentReversal(t *testing.T) {
	original := &Adjustment{
		ID:            12,
		BorrowerID:    3,
		InterestMonth: "2024-01",
		ChitID:        5,
		ChitMonth:     "2024-02",
		Amount:        d("1500"),
		Status:        AdjustmentStatusReversed,
	}

	rev := original.Reversal("entered twice")

	assert.Equal(t, int32(3), rev.BorrowerID)
	assert.Equal(t, int32(5), rev.ChitID)
	assert.Equal(t, Period("2024-02"), rev.InterestMonth, "periods swap")
	assert.Equal(t, Period("2024-01"), rev.ChitMonth)
	assert.True(t, d("1500").Equal(rev.Amount))
	assert.True(t, rev.IsActive())
	require.NotNil(t, rev.ReversalOfID)
	assert.Equal(t, int32(12), *rev.ReversalOfID)
	require.NotNil(t, rev.Notes)
	assert.Equal(t, "Reversal of adjustment #12 - entered twice", *rev.Notes)

	assert.Equal(t, "Reversal of adjustment #12", *original.Reversal("").Notes)
}
