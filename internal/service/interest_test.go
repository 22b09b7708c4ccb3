package service

import (
	"testing"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testLoan() *domain.Loan {
	return &domain.Loan{
		ID:                   1,
		PrincipalGiven:       dec("100000"),
		OutstandingPrincipal: dec("100000"),
		MonthlyRate:          dec("2"),
		GivenDate:            date("2024-01-15"),
		Status:               domain.LoanStatusActive,
	}
}

func principalPayment(month, principal string) *domain.Payment {
	return &domain.Payment{
		InterestMonth: domain.MustPeriod(month),
		TotalReceived: dec(principal),
		PrincipalPaid: dec(principal),
		InterestPaid:  decimal.Zero,
	}
}

func interestPayment(month, interest string) *domain.Payment {
	return &domain.Payment{
		InterestMonth: domain.MustPeriod(month),
		TotalReceived: dec(interest),
		InterestPaid:  dec(interest),
		PrincipalPaid: decimal.Zero,
	}
}

func TestInterestDue_NoPayments(t *testing.T) {
	due := InterestDue(testLoan(), nil, domain.MustPeriod("2024-01"))
	assert.True(t, dec("2000.00").Equal(due), "got %s", due)
}

func TestInterestDue_OpeningPrincipalUsesInterestMonth(t *testing.T) {
	loan := testLoan()
	payments := []*domain.Payment{principalPayment("2024-01", "20000")}

	assert.True(t, dec("2000").Equal(InterestDue(loan, payments, domain.MustPeriod("2024-01"))))
	assert.True(t, dec("1600").Equal(InterestDue(loan, payments, domain.MustPeriod("2024-02"))))
}

func TestInterestDue_BackdatedPrincipalChangesLaterPeriods(t *testing.T) {
	loan := testLoan()
	payments := []*domain.Payment{principalPayment("2024-03", "50000")}

	assert.True(t, dec("2000").Equal(InterestDue(loan, payments, domain.MustPeriod("2024-03"))))
	assert.True(t, dec("1000").Equal(InterestDue(loan, payments, domain.MustPeriod("2024-04"))))

	// Reassigning the same principal to an earlier accrual period moves the drop earlier
	payments[0].InterestMonth = domain.MustPeriod("2024-01")
	assert.True(t, dec("1000").Equal(InterestDue(loan, payments, domain.MustPeriod("2024-03"))))
}

func TestInterestDue_RoundsToCents(t *testing.T) {
	loan := testLoan()
	loan.PrincipalGiven = dec("33333")
	loan.MonthlyRate = dec("1.5")

	due := InterestDue(loan, nil, domain.MustPeriod("2024-01"))
	assert.Equal(t, "500.00", due.StringFixed(2))
	assert.Equal(t, int32(-2), due.Exponent())
}

func TestPendingInterest_SumsArrears(t *testing.T) {
	loan := testLoan()
	payments := []*domain.Payment{
		interestPayment("2024-01", "2000"),
		interestPayment("2024-02", "500"),
	}

	pending := PendingInterest(loan, payments, domain.MustPeriod("2024-03"))
	assert.True(t, dec("3500").Equal(pending), "got %s", pending)
}

func TestPendingInterest_OverpaymentOffsetsShortfall(t *testing.T) {
	loan := testLoan()
	payments := []*domain.Payment{
		interestPayment("2024-01", "3000"),
		interestPayment("2024-02", "1000"),
	}

	pending := PendingInterest(loan, payments, domain.MustPeriod("2024-02"))
	assert.True(t, pending.IsZero(), "got %s", pending)
}

func TestPendingInterest_StopsAtClosedMonth(t *testing.T) {
	loan := testLoan()
	closed := date("2024-02-10")
	loan.Status = domain.LoanStatusClosed
	loan.ClosedDate = &closed

	pending := PendingInterest(loan, nil, domain.MustPeriod("2024-06"))
	assert.True(t, dec("4000").Equal(pending), "got %s", pending)
}

func TestPendingInterest_BeforeStartIsZero(t *testing.T) {
	pending := PendingInterest(testLoan(), nil, domain.MustPeriod("2023-12"))
	assert.True(t, pending.IsZero())
}

func TestPaidFor(t *testing.T) {
	payments := []*domain.Payment{
		interestPayment("2024-01", "1000"),
		principalPayment("2024-01", "5000"),
		interestPayment("2024-02", "700"),
	}

	interest, principal, total := PaidFor(payments, domain.MustPeriod("2024-01"))
	assert.True(t, dec("1000").Equal(interest))
	assert.True(t, dec("5000").Equal(principal))
	assert.True(t, dec("6000").Equal(total))
}

func TestReplayOutstanding(t *testing.T) {
	payments := []*domain.Payment{
		principalPayment("2024-01", "20000"),
		principalPayment("2024-04", "10000"),
		interestPayment("2024-02", "1600"),
	}
	assert.True(t, dec("70000").Equal(ReplayOutstanding(testLoan(), payments)))
}
