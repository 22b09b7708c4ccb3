package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/middleware"
	"github.com/dafibh/lendbook/lendbook-backend/internal/service"
	"github.com/dafibh/lendbook/lendbook-backend/internal/testutil"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const testPIN = "4321"

// testServer is the full route table over in-memory repositories
type testServer struct {
	e           *echo.Echo
	token       string
	borrowers   *testutil.MockBorrowerRepository
	loans       *testutil.MockLoanRepository
	payments    *testutil.MockPaymentRepository
	chits       *testutil.MockChitGroupRepository
	links       *testutil.MockBorrowerChitLinkRepository
	adjustments *testutil.MockAdjustmentRepository
	schedules   *testutil.MockIndividualChitRepository
	rateLimiter *middleware.RateLimiter
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		borrowers:   testutil.NewMockBorrowerRepository(),
		loans:       testutil.NewMockLoanRepository(),
		chits:       testutil.NewMockChitGroupRepository(),
		adjustments: testutil.NewMockAdjustmentRepository(),
		schedules:   testutil.NewMockIndividualChitRepository(),
	}
	s.payments = testutil.NewMockPaymentRepository(s.loans)
	s.links = testutil.NewMockBorrowerChitLinkRepository(s.chits)
	direct := testutil.NewMockDirectChitPaymentRepository()
	tx := testutil.NewMockTransactor()

	authService, err := service.NewAuthService(testPIN, time.Hour)
	if err != nil {
		t.Fatalf("Failed to create auth service: %v", err)
	}
	session, err := authService.Login(testPIN)
	if err != nil {
		t.Fatalf("Failed to log in: %v", err)
	}
	s.token = session.Token

	loanService := service.NewLoanService(tx, s.borrowers, s.loans, s.payments)
	chitService := service.NewChitService(tx, s.borrowers, s.chits, s.links, s.adjustments, direct)
	adjustmentService := service.NewAdjustmentService(tx, service.AdjustmentRepos{
		Borrowers:      s.borrowers,
		Loans:          s.loans,
		Payments:       s.payments,
		ChitGroups:     s.chits,
		Links:          s.links,
		Adjustments:    s.adjustments,
		DirectPayments: direct,
		Schedules:      s.schedules,
	})
	individualService := service.NewIndividualChitService(tx, s.borrowers, s.schedules)
	reportService := service.NewReportService(s.borrowers, s.loans, s.payments)

	s.rateLimiter = middleware.NewRateLimiterWithConfig(6000, 1000)
	t.Cleanup(s.rateLimiter.Stop)

	s.e = echo.New()
	RegisterRoutes(s.e, middleware.NewAuthMiddleware(authService), s.rateLimiter, Handlers{
		Auth:           NewAuthHandler(authService),
		Loan:           NewLoanHandler(loanService),
		Report:         NewReportHandler(reportService),
		ChitGroup:      NewChitGroupHandler(chitService),
		Adjustment:     NewAdjustmentHandler(adjustmentService),
		IndividualChit: NewIndividualChitHandler(individualService, adjustmentService),
		WebSocket:      NewWebSocketHandler(websocket.NewHub(), authService, testAllowedOrigins),
		Health:         NewHealthHandler(stubPinger{}),
	})
	return s
}

// do sends an authenticated request through the router
func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// addLoan stores an Active loan for a new or existing borrower
func (s *testServer) addLoan(id int32, borrowerID int32, name, principal, rate, given string) *domain.Loan {
	if _, err := s.borrowers.GetByID(context.Background(), borrowerID); err != nil {
		s.borrowers.AddBorrower(&domain.Borrower{ID: borrowerID, Name: name})
	}
	givenDate, _ := time.Parse("2006-01-02", given)
	loan := &domain.Loan{
		ID:                   id,
		BorrowerID:           borrowerID,
		BorrowerName:         name,
		PrincipalGiven:       decimal.RequireFromString(principal),
		OutstandingPrincipal: decimal.RequireFromString(principal),
		MonthlyRate:          decimal.RequireFromString(rate),
		GivenDate:            givenDate,
		InterestDueDay:       domain.DefaultInterestDueDay,
		Status:               domain.LoanStatusActive,
	}
	s.loans.AddLoan(loan)
	return loan
}

// addInterest records an interest-only payment
func (s *testServer) addInterest(loanID int32, month, amount string) {
	s.payments.AddPayment(&domain.Payment{
		LoanID:        loanID,
		PaymentDate:   domain.MustPeriod(month).Start(),
		InterestMonth: domain.MustPeriod(month),
		TotalReceived: decimal.RequireFromString(amount),
		InterestPaid:  decimal.RequireFromString(amount),
		PrincipalPaid: decimal.Zero,
	})
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) ProblemDetails {
	t.Helper()
	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal problem details: %v (body %s)", err, rec.Body.String())
	}
	return problem
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to unmarshal response: %v (body %s)", err, rec.Body.String())
	}
}
