package postgres

import (
	"testing"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "2000", "1234.56", "-0.01", "99999999999.99"} {
		d := decimal.RequireFromString(s)
		got := pgNumericToDecimal(decimalToPgNumeric(d))
		assert.True(t, d.Equal(got), "round trip of %s gave %s", s, got)
	}

	assert.True(t, pgNumericToDecimal(pgtype.Numeric{}).IsZero())
	assert.Nil(t, pgNumericPtr(pgtype.Numeric{}))
	assert.False(t, optionalNumeric(nil).Valid)
}

func TestOptionalValues(t *testing.T) {
	note := "cash"
	assert.Equal(t, pgtype.Text{String: "cash", Valid: true}, optionalText(&note))
	assert.False(t, optionalText(nil).Valid)
	assert.Nil(t, pgTextPtr(pgtype.Text{}))

	month := pgPeriodPtr(pgtype.Text{String: "2024-03", Valid: true})
	assert.Equal(t, domain.MustPeriod("2024-03"), *month)
	assert.Nil(t, pgPeriodPtr(pgtype.Text{}))

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, day, *pgDatePtr(timeToPgDate(day)))
	assert.True(t, pgDateToTime(pgtype.Date{}).IsZero())
	assert.Nil(t, pgDatePtr(pgtype.Date{}))

	n := int32(4)
	assert.Equal(t, &n, pgInt4Ptr(optionalInt4(&n)))
}

func TestConditions(t *testing.T) {
	var cond conditions
	assert.Empty(t, cond.where())

	cond.add("l.status = ?", "Active")
	cond.add("(b.name ILIKE ? OR b.phone ILIKE ?)", "%ra%")

	assert.Equal(t, " WHERE l.status = $1 AND (b.name ILIKE $2 OR b.phone ILIKE $2)", cond.where())
	assert.Equal(t, []any{"Active", "%ra%"}, cond.args)
}
