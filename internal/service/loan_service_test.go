package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoanService_RecordLoan(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	loan, err := f.loanService.RecordLoan(ctx, RecordLoanInput{
		BorrowerName:   "  Ravi  ",
		PrincipalGiven: dec("100000"),
		MonthlyRate:    dec("2"),
		GivenDate:      date("2024-01-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ravi", loan.BorrowerName)
	assert.True(t, loan.OutstandingPrincipal.Equal(loan.PrincipalGiven))
	assert.Equal(t, int32(domain.DefaultInterestDueDay), loan.InterestDueDay)
	assert.Equal(t, domain.LoanStatusActive, loan.Status)
	assert.Len(t, f.borrowers.Borrowers, 1)

	// Second loan for the same name reuses the borrower
	_, err = f.loanService.RecordLoan(ctx, RecordLoanInput{
		BorrowerName:   "Ravi",
		PrincipalGiven: dec("5000"),
		MonthlyRate:    dec("3"),
		GivenDate:      date("2024-02-01"),
		InterestDueDay: 10,
	})
	require.NoError(t, err)
	assert.Len(t, f.borrowers.Borrowers, 1)

	require.Len(t, f.events.Events, 2)
	assert.Equal(t, websocket.EntityTypeLoan, f.events.Events[0].Entity)
}

func TestLoanService_RecordLoan_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input RecordLoanInput
		want  error
	}{
		{"empty name", RecordLoanInput{BorrowerName: " ", PrincipalGiven: dec("1"), MonthlyRate: dec("1"), GivenDate: date("2024-01-01")}, domain.ErrBorrowerNameEmpty},
		{"zero principal", RecordLoanInput{BorrowerName: "A", PrincipalGiven: decimal.Zero, MonthlyRate: dec("1"), GivenDate: date("2024-01-01")}, domain.ErrLoanPrincipalInvalid},
		{"negative rate", RecordLoanInput{BorrowerName: "A", PrincipalGiven: dec("1"), MonthlyRate: dec("-1"), GivenDate: date("2024-01-01")}, domain.ErrLoanRateInvalid},
		{"due day", RecordLoanInput{BorrowerName: "A", PrincipalGiven: dec("1"), MonthlyRate: dec("1"), GivenDate: date("2024-01-01"), InterestDueDay: 32}, domain.ErrLoanDueDayInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLedgerFixture(t)
			_, err := f.loanService.RecordLoan(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, domain.IsValidation(err))
			assert.Empty(t, f.loans.Loans)
		})
	}
}

func TestLoanService_RecordPayment_DecrementsOutstanding(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "100000", "2", "2024-01-15")

	_, err := f.loanService.RecordPayment(ctx, RecordPaymentInput{
		LoanID:        loan.ID,
		InterestMonth: domain.MustPeriod("2024-01"),
		PaymentDate:   date("2024-02-05"),
		TotalReceived: dec("22000"),
		InterestPaid:  dec("2000"),
		PrincipalPaid: dec("20000"),
	})
	require.NoError(t, err)

	assert.True(t, dec("80000").Equal(loan.OutstandingPrincipal))
	due, err := f.loanService.InterestDueForPeriod(ctx, loan.ID, domain.MustPeriod("2024-02"))
	require.NoError(t, err)
	assert.True(t, dec("1600").Equal(due), "got %s", due)

	replay, err := f.loanService.ReplayOutstanding(ctx, loan.ID)
	require.NoError(t, err)
	assert.True(t, replay.Consistent)
}

func TestLoanService_RecordPayment_TotalMismatch(t *testing.T) {
	f := newLedgerFixture(t)
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "100000", "2", "2024-01-15")

	_, err := f.loanService.RecordPayment(context.Background(), RecordPaymentInput{
		LoanID:        loan.ID,
		InterestMonth: domain.MustPeriod("2024-01"),
		PaymentDate:   date("2024-02-05"),
		TotalReceived: dec("2000"),
		InterestPaid:  dec("1500"),
		PrincipalPaid: dec("499.98"),
	})
	assert.ErrorIs(t, err, domain.ErrPaymentTotalMismatch)
	assert.Empty(t, f.payments.Payments)
	assert.Equal(t, 0, f.tx.Calls, "rejected before opening a transaction")
}

func TestLoanService_RecordPayment_AdjustmentModeReserved(t *testing.T) {
	f := newLedgerFixture(t)
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "100000", "2", "2024-01-15")

	_, err := f.loanService.RecordPayment(context.Background(), RecordPaymentInput{
		LoanID:        loan.ID,
		InterestMonth: domain.MustPeriod("2024-01"),
		PaymentDate:   date("2024-02-05"),
		TotalReceived: dec("2000"),
		InterestPaid:  dec("2000"),
		PaymentMode:   strPtr(domain.PaymentModeAdjustment),
	})
	assert.ErrorIs(t, err, domain.ErrPaymentModeReserved)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, f.payments.Payments)
	assert.Equal(t, 0, f.tx.Calls, "rejected before opening a transaction")
}

func TestLoanService_RecordPayment_WithinCentTolerance(t *testing.T) {
	f := newLedgerFixture(t)
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "100000", "2", "2024-01-15")

	_, err := f.loanService.RecordPayment(context.Background(), RecordPaymentInput{
		LoanID:        loan.ID,
		InterestMonth: domain.MustPeriod("2024-01"),
		PaymentDate:   date("2024-02-05"),
		TotalReceived: dec("2000"),
		InterestPaid:  dec("1500"),
		PrincipalPaid: dec("499.99"),
	})
	assert.NoError(t, err)
}

func TestLoanService_RecordPayment_ClosedLoan(t *testing.T) {
	f := newLedgerFixture(t)
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "100000", "2", "2024-01-15")
	loan.Status = domain.LoanStatusClosed

	_, err := f.loanService.RecordPayment(context.Background(), RecordPaymentInput{
		LoanID:        loan.ID,
		InterestMonth: domain.MustPeriod("2024-01"),
		PaymentDate:   date("2024-02-05"),
		TotalReceived: dec("2000"),
		InterestPaid:  dec("2000"),
	})
	assert.ErrorIs(t, err, domain.ErrLoanClosed)
	assert.Empty(t, f.payments.Payments)
}

func TestLoanService_RecordPayment_ExceedsOutstanding(t *testing.T) {
	f := newLedgerFixture(t)
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "1000", "2", "2024-01-15")

	_, err := f.loanService.RecordPayment(context.Background(), RecordPaymentInput{
		LoanID:        loan.ID,
		InterestMonth: domain.MustPeriod("2024-01"),
		PaymentDate:   date("2024-02-05"),
		TotalReceived: dec("1500"),
		PrincipalPaid: dec("1500"),
	})
	assert.ErrorIs(t, err, domain.ErrPaymentExceedsPrincipal)
	assert.Contains(t, err.Error(), "₹1000.00")
	assert.True(t, dec("1000").Equal(loan.OutstandingPrincipal))
}

func TestLoanService_RecordPayment_UnknownLoan(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.loanService.RecordPayment(context.Background(), RecordPaymentInput{
		LoanID:        99,
		InterestMonth: domain.MustPeriod("2024-01"),
		PaymentDate:   date("2024-02-05"),
		TotalReceived: dec("10"),
		InterestPaid:  dec("10"),
	})
	assert.True(t, domain.IsNotFound(err))
	assert.False(t, domain.IsValidation(err))
}

func TestLoanService_RecordPayment_StoreFailureIsWrapped(t *testing.T) {
	f := newLedgerFixture(t)
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "1000", "2", "2024-01-15")
	storeErr := errors.New("connection reset")
	f.payments.CreateErr = storeErr

	_, err := f.loanService.RecordPayment(context.Background(), RecordPaymentInput{
		LoanID:        loan.ID,
		InterestMonth: domain.MustPeriod("2024-01"),
		PaymentDate:   date("2024-02-05"),
		TotalReceived: dec("20"),
		InterestPaid:  dec("20"),
	})
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "create payment")
}

func TestLoanService_PendingInterest(t *testing.T) {
	f := newLedgerFixture(t)
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "100000", "2", "2024-01-15")
	f.addInterest(loan.ID, "2024-01", "2000")
	f.addInterest(loan.ID, "2024-02", "1000")

	pending, err := f.loanService.PendingInterest(context.Background(), loan.ID, domain.MustPeriod("2024-03"))
	require.NoError(t, err)
	assert.True(t, dec("3000").Equal(pending), "got %s", pending)

	_, err = f.loanService.PendingInterest(context.Background(), loan.ID, domain.Period("2024-3"))
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestLoanService_PendingInterest_LastSupportedMonth(t *testing.T) {
	f := newLedgerFixture(t)
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "100000", "2", "9999-10-15")

	done := make(chan decimal.Decimal, 1)
	go func() {
		pending, err := f.loanService.PendingInterest(context.Background(), loan.ID, domain.MustPeriod("9999-12"))
		assert.NoError(t, err)
		done <- pending
	}()

	select {
	case pending := <-done:
		assert.True(t, dec("6000").Equal(pending), "got %s", pending)
	case <-time.After(5 * time.Second):
		t.Fatal("PendingInterest did not return for 9999-12")
	}
}

func TestLoanService_CloseLoan(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "100000", "2", "2024-01-15")

	_, err := f.loanService.CloseLoan(ctx, loan.ID, strPtr("settled"), date("2024-01-01"))
	assert.ErrorIs(t, err, domain.ErrCloseBeforeGiven)

	closed, err := f.loanService.CloseLoan(ctx, loan.ID, strPtr("settled"), date("2024-03-10"))
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusClosed, closed.Status)
	require.NotNil(t, closed.ClosedDate)
	assert.Equal(t, date("2024-03-10"), *closed.ClosedDate)

	_, err = f.loanService.CloseLoan(ctx, loan.ID, nil, date("2024-03-11"))
	assert.ErrorIs(t, err, domain.ErrLoanAlreadyClosed)
}

func TestLoanService_GetLoan(t *testing.T) {
	f := newLedgerFixture(t)
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "100000", "2", "2024-01-15")
	f.addInterest(loan.ID, "2024-01", "2000")

	detail, err := f.loanService.GetLoan(context.Background(), loan.ID, date("2024-02-20"))
	require.NoError(t, err)

	assert.Equal(t, domain.MustPeriod("2024-02"), detail.AsOfMonth)
	assert.True(t, dec("2000").Equal(detail.InterestDueMonth))
	assert.True(t, dec("2000").Equal(detail.PendingInterest))
	require.NotNil(t, detail.NextDueDate)
	assert.Equal(t, date("2024-03-05"), *detail.NextDueDate)
}

func TestLoanService_UpdateLoanDetails(t *testing.T) {
	f := newLedgerFixture(t)
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "100000", "2", "2024-01-15")

	updated, err := f.loanService.UpdateLoanDetails(context.Background(), loan.ID, domain.LoanDetailsUpdate{
		InterestDueDay:   12,
		DocumentReceived: true,
		DocumentType:     strPtr("Promissory note"),
	})
	require.NoError(t, err)
	assert.Equal(t, int32(12), updated.InterestDueDay)
	assert.True(t, updated.DocumentReceived)
	assert.True(t, dec("100000").Equal(updated.OutstandingPrincipal))

	_, err = f.loanService.UpdateLoanDetails(context.Background(), loan.ID, domain.LoanDetailsUpdate{InterestDueDay: 40})
	assert.ErrorIs(t, err, domain.ErrLoanDueDayInvalid)
}

func TestLoanService_ReplayOutstanding_DetectsDrift(t *testing.T) {
	f := newLedgerFixture(t)
	loan := f.addLoan(1, f.addBorrower(1, "Ravi"), "100000", "2", "2024-01-15")
	loan.OutstandingPrincipal = dec("90000")

	replay, err := f.loanService.ReplayOutstanding(context.Background(), loan.ID)
	require.NoError(t, err)
	assert.False(t, replay.Consistent)
	assert.True(t, dec("-10000").Equal(replay.Drift))
}
