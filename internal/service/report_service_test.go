package service

import (
	"context"
	"testing"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportScenario builds a small book around January 2024:
//
//	1 Ravi  100000 @ 2%  given 2023-12-01, January interest paid in full
//	2 Meena  50000 @ 2%  given 2024-01-05, 400 of 1000 paid plus 5000 principal
//	3 Kumar  20000 @ 3%  given 2024-02-01, not yet running in January
//	4 Ravi   10000 @ 2%  closed 2023-12-20
//	5 Devi   30000 @ 1%  closed 2024-01-20, nothing paid
func reportScenario(t *testing.T) *ledgerFixture {
	t.Helper()
	f := newLedgerFixture(t)
	ravi := f.addBorrower(1, "Ravi")
	meena := f.addBorrower(2, "Meena")
	kumar := f.addBorrower(3, "Kumar")
	devi := f.addBorrower(4, "Devi")

	f.addLoan(1, ravi, "100000", "2", "2023-12-01")
	f.addLoan(2, meena, "50000", "2", "2024-01-05")
	f.addLoan(3, kumar, "20000", "3", "2024-02-01")
	old := f.addLoan(4, ravi, "10000", "2", "2023-06-01")
	old.Status = domain.LoanStatusClosed
	closedOld := date("2023-12-20")
	old.ClosedDate = &closedOld
	lapsed := f.addLoan(5, devi, "30000", "1", "2023-11-10")
	lapsed.Status = domain.LoanStatusClosed
	closedLapsed := date("2024-01-20")
	lapsed.ClosedDate = &closedLapsed

	f.addInterest(1, "2024-01", "2000")
	f.payments.AddPayment(&domain.Payment{
		LoanID:        2,
		PaymentDate:   date("2024-01-25"),
		InterestMonth: domain.MustPeriod("2024-01"),
		TotalReceived: dec("5400"),
		InterestPaid:  dec("400"),
		PrincipalPaid: dec("5000"),
	})
	f.addInterest(1, "2024-02", "2000")
	f.addInterest(5, "2023-12", "300")
	return f
}

func loanIDs(lines []*domain.MonthlyReportLine) []int32 {
	ids := make([]int32, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.LoanID)
	}
	return ids
}

func TestReportService_MonthlyReport(t *testing.T) {
	f := reportScenario(t)

	report, err := f.reportService.MonthlyReport(context.Background(), domain.MustPeriod("2024-01"), false)
	require.NoError(t, err)

	assert.Equal(t, []int32{1}, loanIDs(report.FullPaid))
	assert.Equal(t, []int32{2}, loanIDs(report.PartialPaid))
	assert.Empty(t, report.NotPaid)

	partial := report.PartialPaid[0]
	assert.True(t, dec("1000").Equal(partial.InterestDue))
	assert.True(t, dec("600").Equal(partial.InterestPendingMonth))
	assert.True(t, dec("600").Equal(partial.InterestPending))

	full := report.FullPaid[0]
	assert.True(t, full.InterestPendingMonth.IsZero())
	assert.True(t, dec("2000").Equal(full.InterestPending), "December is still in arrears")

	totals := report.Totals
	assert.True(t, dec("2400").Equal(totals.InterestReceived))
	assert.True(t, dec("5000").Equal(totals.PrincipalReceived))
	assert.True(t, dec("7400").Equal(totals.TotalReceived))
	assert.True(t, dec("600").Equal(totals.InterestPendingMonth))
	assert.True(t, dec("2600").Equal(totals.InterestPending))
}

func TestReportService_MonthlyReport_IncludeClosed(t *testing.T) {
	f := reportScenario(t)

	report, err := f.reportService.MonthlyReport(context.Background(), domain.MustPeriod("2024-01"), true)
	require.NoError(t, err)

	assert.True(t, report.IncludeClosed)
	assert.Equal(t, []int32{5}, loanIDs(report.NotPaid), "loan closed before the month is out of scope")
	notPaid := report.NotPaid[0]
	assert.True(t, dec("300").Equal(notPaid.InterestDue))
	assert.True(t, dec("600").Equal(notPaid.InterestPending), "November and January unpaid")
	assert.True(t, dec("900").Equal(report.Totals.InterestPendingMonth))
}

func TestReportService_MonthlyReport_InvalidPeriod(t *testing.T) {
	f := reportScenario(t)
	_, err := f.reportService.MonthlyReport(context.Background(), domain.Period("2024-13"), false)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestInReportScope(t *testing.T) {
	jan := domain.MustPeriod("2024-01")
	closedMidMonth := date("2024-01-01")
	closedBefore := date("2023-12-31")

	assert.True(t, inReportScope(&domain.Loan{GivenDate: date("2024-01-31")}, jan))
	assert.False(t, inReportScope(&domain.Loan{GivenDate: date("2024-02-01")}, jan))
	assert.True(t, inReportScope(&domain.Loan{GivenDate: date("2023-01-01"), ClosedDate: &closedMidMonth}, jan))
	assert.False(t, inReportScope(&domain.Loan{GivenDate: date("2023-01-01"), ClosedDate: &closedBefore}, jan))
}

func TestReportService_PersonHistory(t *testing.T) {
	f := reportScenario(t)
	ctx := context.Background()

	history, err := f.reportService.PersonHistory(ctx, "Ravi")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int32(4), history[0].Loan.ID, "oldest loan first")
	assert.Equal(t, int32(1), history[1].Loan.ID)
	assert.Len(t, history[1].Payments, 2)
	assert.Empty(t, history[0].Payments)

	_, err = f.reportService.PersonHistory(ctx, "Nobody")
	assert.True(t, domain.IsNotFound(err))

	_, err = f.reportService.PersonHistory(ctx, "   ")
	assert.True(t, domain.IsValidation(err))
}

func TestReportService_RecentPayments(t *testing.T) {
	f := reportScenario(t)
	ctx := context.Background()
	now := date("2024-02-15")

	groups, err := f.reportService.RecentPayments(ctx, 2, now)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, domain.MustPeriod("2024-02"), groups[0].Month)
	assert.Len(t, groups[0].Payments, 1)
	assert.Equal(t, domain.MustPeriod("2024-01"), groups[1].Month)
	assert.Len(t, groups[1].Payments, 2)
	assert.Equal(t, "Meena", groups[1].Payments[0].BorrowerName, "newest payment first within a month")

	groups, err = f.reportService.RecentPayments(ctx, 0, now)
	require.NoError(t, err)
	assert.Len(t, groups, 3, "defaults to three months")

	_, err = f.reportService.RecentPayments(ctx, 121, now)
	assert.ErrorIs(t, err, domain.ErrRecentMonthsInvalid)
	_, err = f.reportService.RecentPayments(ctx, -1, now)
	assert.ErrorIs(t, err, domain.ErrRecentMonthsInvalid)
}

func TestReportService_LoanSummary(t *testing.T) {
	f := reportScenario(t)

	summary, err := f.reportService.LoanSummary(context.Background(), domain.MustPeriod("2024-01"))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalLoans)
	assert.True(t, dec("170000").Equal(summary.TotalPrincipalGiven))
	assert.True(t, dec("170000").Equal(summary.TotalOutstanding))
	assert.True(t, dec("3600").Equal(summary.TotalInterestDueMonth))
}
