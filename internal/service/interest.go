package service

import (
	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// The functions below are the loan ledger's arithmetic. They re-derive every
// figure from the loan's full payment history on each call; nothing here is
// cached.

// OpeningPrincipal is the principal outstanding at the start of period:
// principal given minus every principal payment assigned to an earlier
// interest month. Payments are grouped by accrual period, not payment date.
func OpeningPrincipal(loan *domain.Loan, payments []*domain.Payment, period domain.Period) decimal.Decimal {
	opening := loan.PrincipalGiven
	for _, p := range payments {
		if p.InterestMonth.Before(period) {
			opening = opening.Sub(p.PrincipalPaid)
		}
	}
	return opening
}

// InterestDue is the flat monthly interest on the opening principal,
// rounded to 2 places
func InterestDue(loan *domain.Loan, payments []*domain.Payment, period domain.Period) decimal.Decimal {
	return domain.RoundMoney(domain.PercentOf(OpeningPrincipal(loan, payments, period), loan.MonthlyRate))
}

// InterestPaidFor sums interest paid against one interest month
func InterestPaidFor(payments []*domain.Payment, period domain.Period) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.InterestMonth == period {
			total = total.Add(p.InterestPaid)
		}
	}
	return total
}

// PaidFor sums every component of the payments assigned to one interest month
func PaidFor(payments []*domain.Payment, period domain.Period) (interest, principal, total decimal.Decimal) {
	interest, principal, total = decimal.Zero, decimal.Zero, decimal.Zero
	for _, p := range payments {
		if p.InterestMonth != period {
			continue
		}
		interest = interest.Add(p.InterestPaid)
		principal = principal.Add(p.PrincipalPaid)
		total = total.Add(p.TotalReceived)
	}
	return interest, principal, total
}

// AccrualEnd is the last period interest accrues for when looking up to upTo:
// the closed month caps it for a closed loan
func AccrualEnd(loan *domain.Loan, upTo domain.Period) domain.Period {
	if closed, ok := loan.ClosedPeriod(); ok {
		return domain.MinPeriod(upTo, closed)
	}
	return upTo
}

// PendingInterest is total arrears: the sum over every period from the loan's
// start month to AccrualEnd of interest due minus interest paid, rounded.
// Over-payment in one period offsets shortfalls in others.
func PendingInterest(loan *domain.Loan, payments []*domain.Payment, upTo domain.Period) decimal.Decimal {
	pending := decimal.Zero
	for _, period := range domain.PeriodRange(loan.StartPeriod(), AccrualEnd(loan, upTo)) {
		due := InterestDue(loan, payments, period)
		pending = pending.Add(due.Sub(InterestPaidFor(payments, period)))
	}
	return domain.RoundMoney(pending)
}

// ReplayOutstanding re-derives outstanding principal from the payment history
func ReplayOutstanding(loan *domain.Loan, payments []*domain.Payment) decimal.Decimal {
	outstanding := loan.PrincipalGiven
	for _, p := range payments {
		outstanding = outstanding.Sub(p.PrincipalPaid)
	}
	return outstanding
}
