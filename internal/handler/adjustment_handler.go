package handler

import (
	"net/http"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// AdjustmentHandler handles interest-to-chit adjustments and direct chit payments
type AdjustmentHandler struct {
	adjustmentService *service.AdjustmentService
}

// NewAdjustmentHandler creates a new AdjustmentHandler
func NewAdjustmentHandler(adjustmentService *service.AdjustmentService) *AdjustmentHandler {
	return &AdjustmentHandler{adjustmentService: adjustmentService}
}

// AdjustmentRequest represents the create (or dry-run) adjustment request body
type AdjustmentRequest struct {
	BorrowerID    int32   `json:"borrowerId"`
	InterestMonth string  `json:"interestMonth"`
	ChitID        int32   `json:"chitId"`
	ChitMonth     string  `json:"chitMonth"`
	Amount        string  `json:"amount"`
	Notes         *string `json:"notes,omitempty"`
}

// ReverseAdjustmentRequest represents the reverse adjustment request body
type ReverseAdjustmentRequest struct {
	Notes string `json:"notes"`
}

// DirectChitPaymentRequest represents the direct chit payment request body
type DirectChitPaymentRequest struct {
	BorrowerID  int32   `json:"borrowerId"`
	ChitID      int32   `json:"chitId"`
	ChitMonth   string  `json:"chitMonth"`
	Amount      string  `json:"amount"`
	PaymentDate string  `json:"paymentDate"`
	PaymentMode *string `json:"paymentMode,omitempty"`
	Reference   *string `json:"reference,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func bindAdjustment(c echo.Context) (service.CreateAdjustmentInput, *ValidationError) {
	var req AdjustmentRequest
	if err := c.Bind(&req); err != nil {
		return service.CreateAdjustmentInput{}, &ValidationError{Message: "Invalid request body"}
	}
	if req.BorrowerID <= 0 {
		return service.CreateAdjustmentInput{}, &ValidationError{Field: "borrowerId", Message: "Borrower ID is required"}
	}
	if req.ChitID <= 0 {
		return service.CreateAdjustmentInput{}, &ValidationError{Field: "chitId", Message: "Chit ID is required"}
	}
	amount, err := parseMoney(req.Amount, false)
	if err != nil {
		return service.CreateAdjustmentInput{}, &ValidationError{Field: "amount", Message: "Amount must be a valid decimal number"}
	}
	return service.CreateAdjustmentInput{
		BorrowerID:    req.BorrowerID,
		InterestMonth: domain.Period(req.InterestMonth),
		ChitID:        req.ChitID,
		ChitMonth:     domain.Period(req.ChitMonth),
		Amount:        amount,
		Notes:         req.Notes,
	}, nil
}

// CreateAdjustment handles POST /api/v1/adjustments
// @Summary Redirect loan interest into a chit period
// @Tags adjustments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdjustmentRequest true "Adjustment"
// @Success 201 {object} domain.Adjustment
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /adjustments [post]
func (h *AdjustmentHandler) CreateAdjustment(c echo.Context) error {
	input, verr := bindAdjustment(c)
	if verr != nil {
		return fieldError(c, verr.Field, verr.Message)
	}
	adj, err := h.adjustmentService.CreateAdjustment(c.Request().Context(), input)
	if err != nil {
		return respondError(c, err, "create adjustment")
	}
	return c.JSON(http.StatusCreated, adj)
}

// ValidateAdjustment handles POST /api/v1/adjustments/validate
// @Summary Dry-run an adjustment without recording it
// @Tags adjustments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdjustmentRequest true "Adjustment"
// @Success 200 {object} domain.AdjustmentCheck
// @Failure 400 {object} ProblemDetails
// @Router /adjustments/validate [post]
func (h *AdjustmentHandler) ValidateAdjustment(c echo.Context) error {
	input, verr := bindAdjustment(c)
	if verr != nil {
		return fieldError(c, verr.Field, verr.Message)
	}
	check, err := h.adjustmentService.ValidateAdjustment(c.Request().Context(), input)
	if err != nil {
		return respondError(c, err, "validate adjustment")
	}
	return c.JSON(http.StatusOK, check)
}

// ListAdjustments handles GET /api/v1/adjustments
// @Summary List adjustments
// @Tags adjustments
// @Produce json
// @Security BearerAuth
// @Param borrowerId query int false "Borrower ID"
// @Param chitId query int false "Chit group ID"
// @Param status query string false "ACTIVE or REVERSED"
// @Success 200 {array} domain.Adjustment
// @Router /adjustments [get]
func (h *AdjustmentHandler) ListAdjustments(c echo.Context) error {
	borrowerID, ok := optionalIDQuery(c, "borrowerId")
	if !ok {
		return fieldError(c, "borrowerId", "Invalid borrower ID")
	}
	chitID, ok := optionalIDQuery(c, "chitId")
	if !ok {
		return fieldError(c, "chitId", "Invalid chit ID")
	}
	filter := domain.AdjustmentFilter{BorrowerID: borrowerID, ChitID: chitID}
	switch status := domain.AdjustmentStatus(c.QueryParam("status")); status {
	case "":
	case domain.AdjustmentStatusActive, domain.AdjustmentStatusReversed:
		filter.Status = &status
	default:
		return fieldError(c, "status", "Status must be ACTIVE or REVERSED")
	}

	adjustments, err := h.adjustmentService.ListAdjustments(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err, "list adjustments")
	}
	return c.JSON(http.StatusOK, adjustments)
}

// GetAdjustment handles GET /api/v1/adjustments/:id
// @Summary Get an adjustment
// @Tags adjustments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Adjustment ID"
// @Success 200 {object} domain.Adjustment
// @Failure 404 {object} ProblemDetails
// @Router /adjustments/{id} [get]
func (h *AdjustmentHandler) GetAdjustment(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid adjustment ID")
	}
	adj, err := h.adjustmentService.GetAdjustment(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "get adjustment")
	}
	return c.JSON(http.StatusOK, adj)
}

// ReverseAdjustment handles POST /api/v1/adjustments/:id/reverse
// @Summary Reverse an adjustment
// @Tags adjustments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Adjustment ID"
// @Param request body ReverseAdjustmentRequest false "Reason"
// @Success 201 {object} domain.Adjustment
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /adjustments/{id}/reverse [post]
func (h *AdjustmentHandler) ReverseAdjustment(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid adjustment ID")
	}
	var req ReverseAdjustmentRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	reversal, err := h.adjustmentService.ReverseAdjustment(c.Request().Context(), id, req.Notes)
	if err != nil {
		return respondError(c, err, "reverse adjustment")
	}
	return c.JSON(http.StatusCreated, reversal)
}

// CreateDirectChitPayment handles POST /api/v1/direct-chit-payments
// @Summary Record cash toward a chit period
// @Tags direct-chit-payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DirectChitPaymentRequest true "Payment"
// @Success 201 {object} domain.DirectChitPayment
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /direct-chit-payments [post]
func (h *AdjustmentHandler) CreateDirectChitPayment(c echo.Context) error {
	var req DirectChitPaymentRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.BorrowerID <= 0 {
		return fieldError(c, "borrowerId", "Borrower ID is required")
	}
	if req.ChitID <= 0 {
		return fieldError(c, "chitId", "Chit ID is required")
	}
	amount, err := parseMoney(req.Amount, false)
	if err != nil {
		return fieldError(c, "amount", "Amount must be a valid decimal number")
	}
	paymentDate, err := parseOptionalDate(req.PaymentDate)
	if err != nil {
		return fieldError(c, "paymentDate", "Payment date must be in YYYY-MM-DD format")
	}

	payment, err := h.adjustmentService.AddDirectChitPayment(c.Request().Context(), service.DirectChitPaymentInput{
		BorrowerID:  req.BorrowerID,
		ChitID:      req.ChitID,
		ChitMonth:   domain.Period(req.ChitMonth),
		Amount:      amount,
		PaymentDate: paymentDate,
		PaymentMode: req.PaymentMode,
		Reference:   req.Reference,
		Notes:       req.Notes,
	})
	if err != nil {
		return respondError(c, err, "record direct chit payment")
	}
	return c.JSON(http.StatusCreated, payment)
}

// ListDirectChitPayments handles GET /api/v1/direct-chit-payments
// @Summary List direct chit payments
// @Tags direct-chit-payments
// @Produce json
// @Security BearerAuth
// @Param borrowerId query int false "Borrower ID"
// @Param chitId query int false "Chit group ID"
// @Success 200 {array} domain.DirectChitPayment
// @Router /direct-chit-payments [get]
func (h *AdjustmentHandler) ListDirectChitPayments(c echo.Context) error {
	borrowerID, ok := optionalIDQuery(c, "borrowerId")
	if !ok {
		return fieldError(c, "borrowerId", "Invalid borrower ID")
	}
	chitID, ok := optionalIDQuery(c, "chitId")
	if !ok {
		return fieldError(c, "chitId", "Invalid chit ID")
	}
	payments, err := h.adjustmentService.ListDirectChitPayments(c.Request().Context(), domain.DirectChitPaymentFilter{BorrowerID: borrowerID, ChitID: chitID})
	if err != nil {
		return respondError(c, err, "list direct chit payments")
	}
	return c.JSON(http.StatusOK, payments)
}

// GetInterestView handles GET /api/v1/interest-view/:borrowerId/:month
// @Summary A borrower's interest received and adjusted for one month
// @Tags adjustments
// @Produce json
// @Security BearerAuth
// @Param borrowerId path int true "Borrower ID"
// @Param month path string true "YYYY-MM"
// @Success 200 {object} domain.InterestMonthView
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /interest-view/{borrowerId}/{month} [get]
func (h *AdjustmentHandler) GetInterestView(c echo.Context) error {
	borrowerID, ok := paramID(c, "borrowerId")
	if !ok {
		return fieldError(c, "borrowerId", "Invalid borrower ID")
	}
	view, err := h.adjustmentService.InterestMonthView(c.Request().Context(), borrowerID, domain.Period(c.Param("month")))
	if err != nil {
		return respondError(c, err, "load interest view")
	}
	return c.JSON(http.StatusOK, view)
}
