package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoanHandler_CreateLoan(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/loans", `{
		"borrowerName": "  Ravi Kumar ",
		"principalGiven": "100000",
		"monthlyRate": "2",
		"givenDate": "2024-01-15",
		"interestDueDay": 10
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var loan domain.Loan
	decodeJSON(t, rec, &loan)
	assert.Equal(t, "Ravi Kumar", loan.BorrowerName)
	assert.True(t, decimal.NewFromInt(100000).Equal(loan.OutstandingPrincipal))
	assert.Equal(t, domain.LoanStatusActive, loan.Status)

	borrower, err := s.borrowers.GetByName(context.Background(), "Ravi Kumar")
	require.NoError(t, err)
	assert.Equal(t, borrower.ID, loan.BorrowerID)
}

func TestLoanHandler_CreateLoanValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name          string
		body          string
		expectedField string
		expectedText  string
	}{
		{
			name:          "principal not a number",
			body:          `{"borrowerName":"Ravi","principalGiven":"abc","monthlyRate":"2","givenDate":"2024-01-15"}`,
			expectedField: "principalGiven",
			expectedText:  "Principal must be a valid decimal number",
		},
		{
			name:          "principal negative",
			body:          `{"borrowerName":"Ravi","principalGiven":"-5","monthlyRate":"2","givenDate":"2024-01-15"}`,
			expectedField: "principalGiven",
			expectedText:  "Principal must be positive",
		},
		{
			name:          "bad given date",
			body:          `{"borrowerName":"Ravi","principalGiven":"1000","monthlyRate":"2","givenDate":"15/01/2024"}`,
			expectedField: "givenDate",
			expectedText:  "Given date must be in YYYY-MM-DD format",
		},
		{
			name:          "blank borrower",
			body:          `{"borrowerName":"   ","principalGiven":"1000","monthlyRate":"2","givenDate":"2024-01-15"}`,
			expectedField: "borrowerName",
			expectedText:  "Borrower name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/api/v1/loans", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", rec.Code)
			}
			problem := decodeProblem(t, rec)
			require.Len(t, problem.Errors, 1)
			assert.Equal(t, tt.expectedField, problem.Errors[0].Field)
			assert.Equal(t, tt.expectedText, problem.Detail)
		})
	}
}

func TestLoanHandler_GetLoanNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/loans/99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
	problem := decodeProblem(t, rec)
	assert.Equal(t, ErrorTypeNotFound, problem.Type)

	rec = s.do(http.MethodGet, "/api/v1/loans/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for non-numeric ID, got %d", rec.Code)
	}
}

func TestLoanHandler_CreatePayment(t *testing.T) {
	s := newTestServer(t)
	s.addLoan(1, 1, "Ravi", "100000", "2", "2024-01-15")

	rec := s.do(http.MethodPost, "/api/v1/payments", `{
		"loanId": 1,
		"interestMonth": "2024-01",
		"paymentDate": "2024-02-05",
		"totalReceived": "12000",
		"interestPaid": "2000",
		"principalPaid": "10000"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	loan, err := s.loans.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(90000).Equal(loan.OutstandingPrincipal))
}

func TestLoanHandler_CreatePaymentRejected(t *testing.T) {
	s := newTestServer(t)
	s.addLoan(1, 1, "Ravi", "100000", "2", "2024-01-15")

	tests := []struct {
		name         string
		body         string
		expectedText string
	}{
		{
			name:         "split does not add up",
			body:         `{"loanId":1,"interestMonth":"2024-01","paymentDate":"2024-02-05","totalReceived":"3000","interestPaid":"2000","principalPaid":"500"}`,
			expectedText: "Interest paid + Principal paid must equal Total received",
		},
		{
			name:         "bad interest month",
			body:         `{"loanId":1,"interestMonth":"2024-13","paymentDate":"2024-02-05","totalReceived":"2000","interestPaid":"2000"}`,
			expectedText: "Interest month must be in YYYY-MM format",
		},
		{
			name:         "principal above outstanding",
			body:         `{"loanId":1,"interestMonth":"2024-01","paymentDate":"2024-02-05","totalReceived":"200000","principalPaid":"200000"}`,
			expectedText: "Principal paid exceeds outstanding principal. Outstanding: ₹100000.00, Requested: ₹200000.00",
		},
		{
			name:         "reserved payment mode",
			body:         `{"loanId":1,"interestMonth":"2024-01","paymentDate":"2024-02-05","totalReceived":"2000","interestPaid":"2000","paymentMode":"Adjustment"}`,
			expectedText: "Payment mode Adjustment is reserved for chit adjustments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/api/v1/payments", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d (body %s)", rec.Code, rec.Body.String())
			}
			assert.Equal(t, tt.expectedText, decodeProblem(t, rec).Detail)
		})
	}

	payments, err := s.payments.ListByLoan(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, payments, "rejected payments must not be stored")
}

func TestLoanHandler_InterestDue(t *testing.T) {
	s := newTestServer(t)
	s.addLoan(1, 1, "Ravi", "100000", "2", "2024-01-15")

	rec := s.do(http.MethodGet, "/api/v1/loans/1/interest-due?month=2024-02", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var response AmountResponse
	decodeJSON(t, rec, &response)
	assert.Equal(t, int32(1), response.LoanID)
	assert.True(t, decimal.NewFromInt(2000).Equal(response.Amount), "got %s", response.Amount)

	rec = s.do(http.MethodGet, "/api/v1/loans/1/interest-due?month=Feb-2024", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for bad month, got %d", rec.Code)
	}
}

func TestLoanHandler_CloseLoan(t *testing.T) {
	s := newTestServer(t)
	s.addLoan(1, 1, "Ravi", "100000", "2", "2024-01-15")

	rec := s.do(http.MethodPost, "/api/v1/loans/1/close", `{"closedDate":"2024-06-30","reason":"Settled"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/loans/1/close", `{"closedDate":"2024-06-30"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400 closing twice, got %d", rec.Code)
	}

	rec = s.do(http.MethodPost, "/api/v1/payments",
		`{"loanId":1,"interestMonth":"2024-06","paymentDate":"2024-07-01","totalReceived":"2000","interestPaid":"2000"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 paying a closed loan, got %d", rec.Code)
	}
}
