package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultRecentMonths is the window RecentPayments uses when none is given
const DefaultRecentMonths = 3

// ReportService builds read-only views over the loan ledger. Nothing here
// writes; every figure is re-derived from payment history.
type ReportService struct {
	borrowerRepo domain.BorrowerRepository
	loanRepo     domain.LoanRepository
	paymentRepo  domain.PaymentRepository
}

// NewReportService creates a new ReportService
func NewReportService(borrowerRepo domain.BorrowerRepository, loanRepo domain.LoanRepository, paymentRepo domain.PaymentRepository) *ReportService {
	return &ReportService{
		borrowerRepo: borrowerRepo,
		loanRepo:     loanRepo,
		paymentRepo:  paymentRepo,
	}
}

// MonthlyReport buckets every in-scope loan by how much of the period's
// interest was paid. Loans given after the period ends, or closed before it
// starts, are left out. Closed loans are only considered with includeClosed.
func (s *ReportService) MonthlyReport(ctx context.Context, period domain.Period, includeClosed bool) (*domain.MonthlyReport, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}

	filter := domain.LoanFilter{}
	if !includeClosed {
		active := domain.LoanStatusActive
		filter.Status = &active
	}
	loans, err := s.loanRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	report := &domain.MonthlyReport{
		Month:         period,
		IncludeClosed: includeClosed,
		FullPaid:      []*domain.MonthlyReportLine{},
		PartialPaid:   []*domain.MonthlyReportLine{},
		NotPaid:       []*domain.MonthlyReportLine{},
		Totals: domain.MonthlyReportTotals{
			InterestReceived:     decimal.Zero,
			PrincipalReceived:    decimal.Zero,
			TotalReceived:        decimal.Zero,
			InterestPendingMonth: decimal.Zero,
			InterestPending:      decimal.Zero,
		},
	}

	for _, loan := range loans {
		if !inReportScope(loan, period) {
			continue
		}
		payments, err := s.paymentRepo.ListByLoan(ctx, loan.ID)
		if err != nil {
			return nil, fmt.Errorf("list payments for loan %d: %w", loan.ID, err)
		}

		due := InterestDue(loan, payments, period)
		interestPaid, principalPaid, totalReceived := PaidFor(payments, period)
		line := &domain.MonthlyReportLine{
			LoanID:               loan.ID,
			BorrowerName:         loan.BorrowerName,
			OutstandingPrincipal: loan.OutstandingPrincipal,
			MonthlyRate:          loan.MonthlyRate,
			InterestDue:          due,
			InterestPaid:         interestPaid,
			InterestPendingMonth: due.Sub(interestPaid),
			InterestPending:      PendingInterest(loan, payments, period),
			PrincipalPaid:        principalPaid,
			TotalReceived:        totalReceived,
		}

		totals := &report.Totals
		switch {
		case interestPaid.GreaterThanOrEqual(due):
			report.FullPaid = append(report.FullPaid, line)
		case interestPaid.IsPositive():
			report.PartialPaid = append(report.PartialPaid, line)
			totals.InterestPendingMonth = totals.InterestPendingMonth.Add(line.InterestPendingMonth)
		default:
			report.NotPaid = append(report.NotPaid, line)
			totals.InterestPendingMonth = totals.InterestPendingMonth.Add(line.InterestPendingMonth)
		}
		totals.InterestReceived = totals.InterestReceived.Add(interestPaid)
		totals.PrincipalReceived = totals.PrincipalReceived.Add(principalPaid)
		totals.TotalReceived = totals.TotalReceived.Add(totalReceived)
		totals.InterestPending = totals.InterestPending.Add(line.InterestPending)
	}
	return report, nil
}

// inReportScope reports whether a loan existed at some point during period
func inReportScope(loan *domain.Loan, period domain.Period) bool {
	if loan.GivenDate.After(period.End()) {
		return false
	}
	if loan.ClosedDate != nil && loan.ClosedDate.Before(period.Start()) {
		return false
	}
	return true
}

// PersonHistory lists every loan of the named borrower, oldest first, each
// with its payments
func (s *ReportService) PersonHistory(ctx context.Context, borrowerName string) ([]*domain.PersonHistoryEntry, error) {
	name, err := domain.NormalizeBorrowerName(borrowerName)
	if err != nil {
		return nil, err
	}
	borrower, err := s.borrowerRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	loans, err := s.loanRepo.List(ctx, domain.LoanFilter{BorrowerID: &borrower.ID})
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	sort.SliceStable(loans, func(i, j int) bool {
		return loans[i].GivenDate.Before(loans[j].GivenDate)
	})

	history := make([]*domain.PersonHistoryEntry, 0, len(loans))
	for _, loan := range loans {
		payments, err := s.paymentRepo.ListByLoan(ctx, loan.ID)
		if err != nil {
			return nil, fmt.Errorf("list payments for loan %d: %w", loan.ID, err)
		}
		history = append(history, &domain.PersonHistoryEntry{Loan: loan, Payments: payments})
	}
	return history, nil
}

// RecentPayments groups the payments of the last `months` interest months
// (counting the month of now) by interest month, newest month first
func (s *ReportService) RecentPayments(ctx context.Context, months int, now time.Time) ([]*domain.RecentPaymentsMonth, error) {
	if months == 0 {
		months = DefaultRecentMonths
	}
	if months < 1 || months > domain.MaxChitMonths {
		return nil, domain.ErrRecentMonthsInvalid
	}

	from := domain.PeriodOf(now).AddMonths(-(months - 1))
	details, err := s.paymentRepo.ListDetailsSince(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("list recent payments: %w", err)
	}

	groups := []*domain.RecentPaymentsMonth{}
	index := map[domain.Period]*domain.RecentPaymentsMonth{}
	for _, d := range details {
		group, ok := index[d.InterestMonth]
		if !ok {
			group = &domain.RecentPaymentsMonth{Month: d.InterestMonth}
			index[d.InterestMonth] = group
			groups = append(groups, group)
		}
		group.Payments = append(group.Payments, d)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Month.After(groups[j].Month)
	})
	return groups, nil
}

// LoanSummary totals the Active book and the interest it owes for period
func (s *ReportService) LoanSummary(ctx context.Context, period domain.Period) (*domain.LoanSummary, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}

	active := domain.LoanStatusActive
	loans, err := s.loanRepo.List(ctx, domain.LoanFilter{Status: &active})
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	summary := &domain.LoanSummary{
		Month:                 period,
		TotalLoans:            len(loans),
		TotalPrincipalGiven:   decimal.Zero,
		TotalOutstanding:      decimal.Zero,
		TotalInterestDueMonth: decimal.Zero,
	}
	for _, loan := range loans {
		payments, err := s.paymentRepo.ListByLoan(ctx, loan.ID)
		if err != nil {
			return nil, fmt.Errorf("list payments for loan %d: %w", loan.ID, err)
		}
		summary.TotalPrincipalGiven = summary.TotalPrincipalGiven.Add(loan.PrincipalGiven)
		summary.TotalOutstanding = summary.TotalOutstanding.Add(loan.OutstandingPrincipal)
		summary.TotalInterestDueMonth = summary.TotalInterestDueMonth.Add(InterestDue(loan, payments, period))
	}
	return summary, nil
}
