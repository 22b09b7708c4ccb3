package service

import (
	"testing"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

// ledgerFixture wires every service to one shared set of in-memory repositories
type ledgerFixture struct {
	tx          *testutil.MockTransactor
	borrowers   *testutil.MockBorrowerRepository
	loans       *testutil.MockLoanRepository
	payments    *testutil.MockPaymentRepository
	chits       *testutil.MockChitGroupRepository
	links       *testutil.MockBorrowerChitLinkRepository
	adjustments *testutil.MockAdjustmentRepository
	direct      *testutil.MockDirectChitPaymentRepository
	schedules   *testutil.MockIndividualChitRepository
	events      *testutil.MockEventPublisher

	loanService       *LoanService
	chitService       *ChitService
	adjustmentService *AdjustmentService
	individualService *IndividualChitService
	reportService     *ReportService
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	f := &ledgerFixture{
		tx:          testutil.NewMockTransactor(),
		borrowers:   testutil.NewMockBorrowerRepository(),
		loans:       testutil.NewMockLoanRepository(),
		chits:       testutil.NewMockChitGroupRepository(),
		adjustments: testutil.NewMockAdjustmentRepository(),
		direct:      testutil.NewMockDirectChitPaymentRepository(),
		schedules:   testutil.NewMockIndividualChitRepository(),
		events:      &testutil.MockEventPublisher{},
	}
	f.payments = testutil.NewMockPaymentRepository(f.loans)
	f.links = testutil.NewMockBorrowerChitLinkRepository(f.chits)

	f.loanService = NewLoanService(f.tx, f.borrowers, f.loans, f.payments)
	f.chitService = NewChitService(f.tx, f.borrowers, f.chits, f.links, f.adjustments, f.direct)
	f.adjustmentService = NewAdjustmentService(f.tx, AdjustmentRepos{
		Borrowers:      f.borrowers,
		Loans:          f.loans,
		Payments:       f.payments,
		ChitGroups:     f.chits,
		Links:          f.links,
		Adjustments:    f.adjustments,
		DirectPayments: f.direct,
		Schedules:      f.schedules,
	})
	f.individualService = NewIndividualChitService(f.tx, f.borrowers, f.schedules)
	f.reportService = NewReportService(f.borrowers, f.loans, f.payments)

	f.loanService.SetEventPublisher(f.events)
	f.chitService.SetEventPublisher(f.events)
	f.adjustmentService.SetEventPublisher(f.events)
	f.individualService.SetEventPublisher(f.events)
	return f
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string {
	return &s
}

// addBorrower stores a borrower and returns it
func (f *ledgerFixture) addBorrower(id int32, name string) *domain.Borrower {
	b := &domain.Borrower{ID: id, Name: name}
	f.borrowers.AddBorrower(b)
	return b
}

// addLoan stores an Active loan for the borrower
func (f *ledgerFixture) addLoan(id int32, b *domain.Borrower, principal, rate, given string) *domain.Loan {
	loan := &domain.Loan{
		ID:                   id,
		BorrowerID:           b.ID,
		BorrowerName:         b.Name,
		PrincipalGiven:       dec(principal),
		OutstandingPrincipal: dec(principal),
		MonthlyRate:          dec(rate),
		GivenDate:            date(given),
		InterestDueDay:       domain.DefaultInterestDueDay,
		Status:               domain.LoanStatusActive,
	}
	f.loans.AddLoan(loan)
	return loan
}

// addInterest records an interest-only cash payment
func (f *ledgerFixture) addInterest(loanID int32, month, amount string) {
	f.payments.AddPayment(&domain.Payment{
		LoanID:        loanID,
		PaymentDate:   domain.MustPeriod(month).Start(),
		InterestMonth: domain.MustPeriod(month),
		TotalReceived: dec(amount),
		InterestPaid:  dec(amount),
		PrincipalPaid: decimal.Zero,
	})
}

// addChit stores an Active chit group
func (f *ledgerFixture) addChit(id int32, name, installment, start string) *domain.ChitGroup {
	chit := &domain.ChitGroup{
		ID:                 id,
		Name:               name,
		MonthlyInstallment: dec(installment),
		StartMonth:         domain.MustPeriod(start),
		Status:             domain.ChitStatusActive,
	}
	f.chits.AddChitGroup(chit)
	return chit
}
