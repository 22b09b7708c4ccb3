package service

import (
	"context"
	"strings"
	"testing"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scheduleScenario gives borrower Ravi a 100000 @ 2% loan (2000 interest due
// for 2024-01) and a three-month individual chit due on the 10th
func scheduleScenario(t *testing.T, amounts ...string) (*ledgerFixture, *domain.IndividualChit) {
	t.Helper()
	f := newLedgerFixture(t)
	b := f.addBorrower(1, "Ravi")
	f.addLoan(1, b, "100000", "2", "2024-01-15")

	monthly := make([]decimal.Decimal, 0, len(amounts))
	for _, a := range amounts {
		monthly = append(monthly, dec(a))
	}
	chit, err := f.individualService.CreateIndividualChit(context.Background(), CreateIndividualChitInput{
		BorrowerName:   "Ravi",
		ChitName:       "Ravi 1L",
		TotalMonths:    3,
		StartDate:      date("2024-02-10"),
		MonthlyAmounts: monthly,
	})
	require.NoError(t, err)
	f.events.Events = nil
	return f, chit
}

func scheduleInput(lineID int32, requested string) ScheduleAdjustmentInput {
	return ScheduleAdjustmentInput{
		LineID:        lineID,
		LoanID:        1,
		InterestMonth: domain.MustPeriod("2024-01"),
		Requested:     dec(requested),
		Date:          date("2024-02-10"),
	}
}

func TestAdjustScheduleFromInterest_PartialWhenInterestShort(t *testing.T) {
	f, chit := scheduleScenario(t, "3000", "3000", "3000")
	ctx := context.Background()
	line := chit.Schedule[0]

	result, err := f.adjustmentService.AdjustScheduleFromInterest(ctx, scheduleInput(line.ID, "3000"))
	require.NoError(t, err)

	assert.True(t, dec("2000").Equal(result.Available))
	assert.True(t, dec("2000").Equal(result.Applied))
	assert.True(t, result.Partial)
	assert.True(t, strings.HasPrefix(result.Message, "Partial Payment - Interest Insufficient"))
	assert.Contains(t, result.Message, "Remaining to Pay: ₹1000.00")
	require.NotNil(t, result.Adjustment.Notes)
	assert.Equal(t, "(Partial: Interest ₹2000.00 < Chit ₹3000.00)", *result.Adjustment.Notes)

	assert.Equal(t, domain.LineStatusPartial, result.Line.PaymentStatus)
	assert.True(t, dec("1000").Equal(result.Line.Left))

	payment := result.Payment
	assert.True(t, payment.IsAdjustment())
	assert.True(t, payment.PrincipalPaid.IsZero())
	assert.True(t, dec("2000").Equal(payment.InterestPaid))
	assert.True(t, payment.InterestPaid.Equal(payment.TotalReceived))
	require.NotNil(t, payment.Notes)
	assert.Equal(t, "Chit adjustment: Ravi 1L Month 1", *payment.Notes)

	pending, err := f.loanService.PendingInterest(ctx, 1, domain.MustPeriod("2024-01"))
	require.NoError(t, err)
	assert.True(t, pending.IsZero(), "the synthetic payment settles the month's interest")

	require.Len(t, f.events.Events, 2)
	assert.Equal(t, "chit_schedule.adjusted", f.events.Events[0].Type)
	assert.Equal(t, "payment.created", f.events.Events[1].Type)
}

func TestAdjustScheduleFromInterest_CappedAtAvailable(t *testing.T) {
	f, chit := scheduleScenario(t, "1500")
	line := chit.Schedule[0]

	result, err := f.adjustmentService.AdjustScheduleFromInterest(context.Background(), scheduleInput(line.ID, "2500"))
	require.NoError(t, err)

	assert.True(t, dec("1500").Equal(result.Applied))
	assert.False(t, result.Partial)
	assert.True(t, strings.HasPrefix(result.Message, "Full Payment - Using Available Interest"))
	require.NotNil(t, result.Adjustment.Notes)
	assert.Equal(t, "(Full payment using available interest)", *result.Adjustment.Notes)
	assert.Equal(t, domain.LineStatusAdjusted, result.Line.PaymentStatus)
}

func TestAdjustScheduleFromInterest_ExactAmountHasNoMessage(t *testing.T) {
	f, chit := scheduleScenario(t, "1500")
	line := chit.Schedule[0]

	in := scheduleInput(line.ID, "1500")
	in.Notes = "  march  "
	result, err := f.adjustmentService.AdjustScheduleFromInterest(context.Background(), in)
	require.NoError(t, err)

	assert.Empty(t, result.Message)
	require.NotNil(t, result.Adjustment.Notes)
	assert.Equal(t, "march", *result.Adjustment.Notes)
}

func TestAdjustScheduleFromInterest_SettledLine(t *testing.T) {
	f, chit := scheduleScenario(t, "1500")
	ctx := context.Background()
	line := chit.Schedule[0]

	_, err := f.adjustmentService.AdjustScheduleFromInterest(ctx, scheduleInput(line.ID, "1500"))
	require.NoError(t, err)

	_, err = f.adjustmentService.AdjustScheduleFromInterest(ctx, scheduleInput(line.ID, "100"))
	assert.ErrorIs(t, err, domain.ErrScheduleLineSettled)
}

func TestAdjustScheduleFromInterest_NoInterestAvailable(t *testing.T) {
	f, chit := scheduleScenario(t, "3000")
	f.addInterest(1, "2024-01", "2000")

	_, err := f.adjustmentService.AdjustScheduleFromInterest(context.Background(), scheduleInput(chit.Schedule[0].ID, "100"))
	assert.ErrorIs(t, err, domain.ErrNoInterestAvailable)
	assert.Contains(t, err.Error(), "Already Paid: ₹2000.00")
	assert.Len(t, f.payments.Payments, 1)
	assert.Empty(t, f.schedules.Adjustments)
}

func TestAdjustScheduleFromInterest_Rejections(t *testing.T) {
	t.Run("loan of another borrower", func(t *testing.T) {
		f, chit := scheduleScenario(t, "3000")
		f.addLoan(2, f.addBorrower(2, "Meena"), "50000", "2", "2024-01-01")
		in := scheduleInput(chit.Schedule[0].ID, "100")
		in.LoanID = 2

		_, err := f.adjustmentService.AdjustScheduleFromInterest(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrScheduleLoanMismatch)
	})

	t.Run("closed loan", func(t *testing.T) {
		f, chit := scheduleScenario(t, "3000")
		f.loans.Loans[1].Status = domain.LoanStatusClosed

		_, err := f.adjustmentService.AdjustScheduleFromInterest(context.Background(), scheduleInput(chit.Schedule[0].ID, "100"))
		assert.ErrorIs(t, err, domain.ErrLoanClosed)
	})

	t.Run("closed chit", func(t *testing.T) {
		f, chit := scheduleScenario(t, "3000")
		_, err := f.individualService.CloseIndividualChit(context.Background(), chit.ID)
		require.NoError(t, err)

		_, err = f.adjustmentService.AdjustScheduleFromInterest(context.Background(), scheduleInput(chit.Schedule[0].ID, "100"))
		assert.ErrorIs(t, err, domain.ErrIndividualChitClosed)
	})

	t.Run("unknown line", func(t *testing.T) {
		f, _ := scheduleScenario(t, "3000")
		_, err := f.adjustmentService.AdjustScheduleFromInterest(context.Background(), scheduleInput(999, "100"))
		assert.ErrorIs(t, err, domain.ErrScheduleLineNotFound)
	})

	t.Run("non-positive request", func(t *testing.T) {
		f, chit := scheduleScenario(t, "3000")
		_, err := f.adjustmentService.AdjustScheduleFromInterest(context.Background(), scheduleInput(chit.Schedule[0].ID, "0"))
		assert.ErrorIs(t, err, domain.ErrAmountNotPositive)
	})
}

func TestAdjustScheduleFromInterest_SyntheticPaymentCountsAsInterestReceived(t *testing.T) {
	f, chit := scheduleScenario(t, "5000")
	ctx := context.Background()
	f.addInterest(1, "2024-01", "500")

	result, err := f.adjustmentService.AdjustScheduleFromInterest(ctx, scheduleInput(chit.Schedule[0].ID, "5000"))
	require.NoError(t, err)
	assert.True(t, dec("1500").Equal(result.Applied))

	view, err := f.adjustmentService.InterestMonthView(ctx, 1, domain.MustPeriod("2024-01"))
	require.NoError(t, err)
	assert.True(t, dec("2000").Equal(view.InterestReceived), "got %s", view.InterestReceived)
}
