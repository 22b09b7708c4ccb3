package handler

import (
	"net/http"
	"strings"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/service"
	"github.com/dafibh/lendbook/lendbook-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// LoanHandler handles loan and loan-payment HTTP requests
type LoanHandler struct {
	loanService *service.LoanService
}

// NewLoanHandler creates a new LoanHandler
func NewLoanHandler(loanService *service.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// CreateLoanRequest represents the create loan request body
type CreateLoanRequest struct {
	BorrowerName     string  `json:"borrowerName"`
	Phone            *string `json:"phone,omitempty"`
	PrincipalGiven   string  `json:"principalGiven"`
	MonthlyRate      string  `json:"monthlyRate"`
	GivenDate        string  `json:"givenDate"`
	InterestDueDay   int32   `json:"interestDueDay"`
	DocumentReceived bool    `json:"documentReceived"`
	DocumentType     *string `json:"documentType,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// UpdateLoanRequest represents the update loan request body.
// Principal, rate and outstanding balance are locked after creation.
type UpdateLoanRequest struct {
	Phone            *string `json:"phone,omitempty"`
	InterestDueDay   int32   `json:"interestDueDay"`
	DocumentReceived bool    `json:"documentReceived"`
	DocumentType     *string `json:"documentType,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// CloseLoanRequest represents the close loan request body
type CloseLoanRequest struct {
	ClosedDate string  `json:"closedDate"`
	Reason     *string `json:"reason,omitempty"`
}

// CreatePaymentRequest represents the record payment request body
type CreatePaymentRequest struct {
	LoanID        int32   `json:"loanId"`
	InterestMonth string  `json:"interestMonth"`
	PaymentDate   string  `json:"paymentDate"`
	TotalReceived string  `json:"totalReceived"`
	InterestPaid  string  `json:"interestPaid"`
	PrincipalPaid string  `json:"principalPaid"`
	PaymentMode   *string `json:"paymentMode,omitempty"`
	Reference     *string `json:"reference,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// AmountResponse wraps a single money figure for a period
type AmountResponse struct {
	LoanID int32           `json:"loanId"`
	Month  domain.Period   `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// CreateLoan handles POST /api/v1/loans
// @Summary Record a loan
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLoanRequest true "Loan"
// @Success 201 {object} domain.Loan
// @Failure 400 {object} ProblemDetails
// @Router /loans [post]
func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req CreateLoanRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	principal, err := parseMoney(req.PrincipalGiven, false)
	if err != nil {
		return fieldError(c, "principalGiven", "Principal must be a valid decimal number")
	}
	rate, err := parseMoney(req.MonthlyRate, false)
	if err != nil {
		return fieldError(c, "monthlyRate", "Monthly rate must be a valid decimal number")
	}
	givenDate, err := util.ParseDate(req.GivenDate)
	if err != nil {
		return fieldError(c, "givenDate", "Given date must be in YYYY-MM-DD format")
	}

	loan, err := h.loanService.RecordLoan(c.Request().Context(), service.RecordLoanInput{
		BorrowerName:     req.BorrowerName,
		Phone:            req.Phone,
		PrincipalGiven:   principal,
		MonthlyRate:      rate,
		GivenDate:        givenDate,
		InterestDueDay:   req.InterestDueDay,
		DocumentReceived: req.DocumentReceived,
		DocumentType:     req.DocumentType,
		Notes:            req.Notes,
	})
	if err != nil {
		return respondError(c, err, "record loan")
	}
	return c.JSON(http.StatusCreated, loan)
}

// ListLoans handles GET /api/v1/loans
// @Summary List loans
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param status query string false "Active or Closed"
// @Param borrowerId query int false "Borrower ID"
// @Param search query string false "Borrower name or phone substring"
// @Success 200 {array} domain.Loan
// @Router /loans [get]
func (h *LoanHandler) ListLoans(c echo.Context) error {
	filter := domain.LoanFilter{Search: strings.TrimSpace(c.QueryParam("search"))}
	switch status := domain.LoanStatus(c.QueryParam("status")); status {
	case "":
	case domain.LoanStatusActive, domain.LoanStatusClosed:
		filter.Status = &status
	default:
		return fieldError(c, "status", "Status must be Active or Closed")
	}
	borrowerID, ok := optionalIDQuery(c, "borrowerId")
	if !ok {
		return fieldError(c, "borrowerId", "Invalid borrower ID")
	}
	filter.BorrowerID = borrowerID

	loans, err := h.loanService.ListLoans(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err, "list loans")
	}
	return c.JSON(http.StatusOK, loans)
}

// GetLoan handles GET /api/v1/loans/:id
// @Summary Get a loan with its current standing
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Param asOf query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} domain.LoanDetail
// @Failure 404 {object} ProblemDetails
// @Router /loans/{id} [get]
func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid loan ID")
	}
	asOf, err := parseOptionalDate(c.QueryParam("asOf"))
	if err != nil {
		return fieldError(c, "asOf", "asOf must be in YYYY-MM-DD format")
	}

	detail, err := h.loanService.GetLoan(c.Request().Context(), id, asOf)
	if err != nil {
		return respondError(c, err, "get loan")
	}
	return c.JSON(http.StatusOK, detail)
}

// UpdateLoan handles PUT /api/v1/loans/:id
// @Summary Update loan details
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Param request body UpdateLoanRequest true "Editable fields"
// @Success 200 {object} domain.Loan
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /loans/{id} [put]
func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid loan ID")
	}
	var req UpdateLoanRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	loan, err := h.loanService.UpdateLoanDetails(c.Request().Context(), id, domain.LoanDetailsUpdate{
		Phone:            req.Phone,
		InterestDueDay:   req.InterestDueDay,
		DocumentReceived: req.DocumentReceived,
		DocumentType:     req.DocumentType,
		Notes:            req.Notes,
	})
	if err != nil {
		return respondError(c, err, "update loan")
	}
	return c.JSON(http.StatusOK, loan)
}

// CloseLoan handles POST /api/v1/loans/:id/close
// @Summary Close a loan
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Param request body CloseLoanRequest false "Close date and reason"
// @Success 200 {object} domain.Loan
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /loans/{id}/close [post]
func (h *LoanHandler) CloseLoan(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid loan ID")
	}
	var req CloseLoanRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	closedDate, err := parseOptionalDate(req.ClosedDate)
	if err != nil {
		return fieldError(c, "closedDate", "Closed date must be in YYYY-MM-DD format")
	}

	loan, err := h.loanService.CloseLoan(c.Request().Context(), id, req.Reason, closedDate)
	if err != nil {
		return respondError(c, err, "close loan")
	}
	return c.JSON(http.StatusOK, loan)
}

// GetInterestDue handles GET /api/v1/loans/:id/interest-due
// @Summary Interest due for one month
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} AmountResponse
// @Router /loans/{id}/interest-due [get]
func (h *LoanHandler) GetInterestDue(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid loan ID")
	}
	month, err := periodQuery(c, "month")
	if err != nil {
		return respondError(c, err, "compute interest due")
	}

	due, err := h.loanService.InterestDueForPeriod(c.Request().Context(), id, month)
	if err != nil {
		return respondError(c, err, "compute interest due")
	}
	return c.JSON(http.StatusOK, AmountResponse{LoanID: id, Month: month, Amount: due})
}

// GetPendingInterest handles GET /api/v1/loans/:id/pending-interest
// @Summary Unpaid interest accrued up to a month
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Param upTo query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} AmountResponse
// @Router /loans/{id}/pending-interest [get]
func (h *LoanHandler) GetPendingInterest(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid loan ID")
	}
	upTo, err := periodQuery(c, "upTo")
	if err != nil {
		return respondError(c, err, "compute pending interest")
	}

	pending, err := h.loanService.PendingInterest(c.Request().Context(), id, upTo)
	if err != nil {
		return respondError(c, err, "compute pending interest")
	}
	return c.JSON(http.StatusOK, AmountResponse{LoanID: id, Month: upTo, Amount: pending})
}

// ListPayments handles GET /api/v1/loans/:id/payments
// @Summary List a loan's payments
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {array} domain.Payment
// @Failure 404 {object} ProblemDetails
// @Router /loans/{id}/payments [get]
func (h *LoanHandler) ListPayments(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid loan ID")
	}
	payments, err := h.loanService.ListPayments(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "list payments")
	}
	return c.JSON(http.StatusOK, payments)
}

// ReconcileLoan handles GET /api/v1/loans/:id/reconcile
// @Summary Replay principal payments against the cached balance
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} domain.OutstandingReplay
// @Router /loans/{id}/reconcile [get]
func (h *LoanHandler) ReconcileLoan(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid loan ID")
	}
	replay, err := h.loanService.ReplayOutstanding(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "reconcile loan")
	}
	return c.JSON(http.StatusOK, replay)
}

// CreatePayment handles POST /api/v1/payments
// @Summary Record a loan payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePaymentRequest true "Payment"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /payments [post]
func (h *LoanHandler) CreatePayment(c echo.Context) error {
	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.LoanID <= 0 {
		return fieldError(c, "loanId", "Loan ID is required")
	}

	total, err := parseMoney(req.TotalReceived, false)
	if err != nil {
		return fieldError(c, "totalReceived", "Total received must be a valid decimal number")
	}
	interest, err := parseMoney(req.InterestPaid, true)
	if err != nil {
		return fieldError(c, "interestPaid", "Interest paid must be a valid decimal number")
	}
	principal, err := parseMoney(req.PrincipalPaid, true)
	if err != nil {
		return fieldError(c, "principalPaid", "Principal paid must be a valid decimal number")
	}
	paymentDate, err := util.ParseDate(req.PaymentDate)
	if err != nil {
		return fieldError(c, "paymentDate", "Payment date must be in YYYY-MM-DD format")
	}

	payment, err := h.loanService.RecordPayment(c.Request().Context(), service.RecordPaymentInput{
		LoanID:        req.LoanID,
		InterestMonth: domain.Period(req.InterestMonth),
		PaymentDate:   paymentDate,
		TotalReceived: total,
		InterestPaid:  interest,
		PrincipalPaid: principal,
		PaymentMode:   req.PaymentMode,
		Reference:     req.Reference,
		Notes:         req.Notes,
	})
	if err != nil {
		return respondError(c, err, "record payment")
	}
	return c.JSON(http.StatusCreated, payment)
}

// ListBorrowers handles GET /api/v1/borrowers
// @Summary List borrowers
// @Tags borrowers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Borrower
// @Router /borrowers [get]
func (h *LoanHandler) ListBorrowers(c echo.Context) error {
	borrowers, err := h.loanService.ListBorrowers(c.Request().Context())
	if err != nil {
		return respondError(c, err, "list borrowers")
	}
	return c.JSON(http.StatusOK, borrowers)
}
