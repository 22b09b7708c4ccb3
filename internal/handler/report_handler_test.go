package handler

import (
	"net/http"
	"testing"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportHandler_MonthlyReport(t *testing.T) {
	s := newTestServer(t)
	s.addLoan(1, 1, "Ravi", "100000", "2", "2024-01-15")
	s.addLoan(2, 2, "Meena", "50000", "3", "2024-01-01")
	s.addInterest(1, "2024-02", "2000")

	rec := s.do(http.MethodGet, "/api/v1/monthly-report?month=2024-02", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report domain.MonthlyReport
	decodeJSON(t, rec, &report)
	require.Len(t, report.FullPaid, 1)
	require.Len(t, report.NotPaid, 1)
	assert.Empty(t, report.PartialPaid)
	assert.Equal(t, "Ravi", report.FullPaid[0].BorrowerName)
	assert.Equal(t, "Meena", report.NotPaid[0].BorrowerName)
	assert.True(t, decimal.NewFromInt(2000).Equal(report.Totals.InterestReceived))
	assert.True(t, decimal.NewFromInt(1500).Equal(report.Totals.InterestPendingMonth))
}

func TestReportHandler_MonthlyReportBadQuery(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{"month out of range", "?month=2024-13"},
		{"month not a period", "?month=last"},
		{"includeClosed not a bool", "?month=2024-02&includeClosed=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodGet, "/api/v1/monthly-report"+tt.query, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestReportHandler_RecentPayments(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
	}{
		{"default window", "", http.StatusOK},
		{"explicit window", "?months=6", http.StatusOK},
		{"zero months", "?months=0", http.StatusBadRequest},
		{"too many months", "?months=121", http.StatusBadRequest},
		{"not a number", "?months=six", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodGet, "/api/v1/recent-payments"+tt.query, "")
			if rec.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d (body %s)", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedStatus == http.StatusBadRequest && tt.query != "?months=six" {
				assert.Equal(t, "Months must be between 1 and 120", decodeProblem(t, rec).Detail)
			}
		})
	}
}

func TestReportHandler_PersonHistory(t *testing.T) {
	s := newTestServer(t)
	s.addLoan(1, 1, "Ravi", "100000", "2", "2024-01-15")
	s.addLoan(2, 1, "Ravi", "20000", "2", "2023-06-01")
	s.addInterest(1, "2024-01", "2000")

	rec := s.do(http.MethodGet, "/api/v1/person-history/Ravi", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var history []domain.PersonHistoryEntry
	decodeJSON(t, rec, &history)
	require.Len(t, history, 2)
	assert.Equal(t, int32(2), history[0].Loan.ID, "oldest loan first")
	assert.Len(t, history[1].Payments, 1)

	rec = s.do(http.MethodGet, "/api/v1/person-history/Nobody", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportHandler_LoanSummary(t *testing.T) {
	s := newTestServer(t)
	s.addLoan(1, 1, "Ravi", "100000", "2", "2024-01-15")
	s.addLoan(2, 2, "Meena", "50000", "3", "2024-01-01")

	rec := s.do(http.MethodGet, "/api/v1/loans/summary?month=2024-03", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var summary domain.LoanSummary
	decodeJSON(t, rec, &summary)
	assert.Equal(t, 2, summary.TotalLoans)
	assert.True(t, decimal.NewFromInt(150000).Equal(summary.TotalOutstanding))
	assert.True(t, decimal.NewFromInt(3500).Equal(summary.TotalInterestDueMonth))
}
