package handler

import (
	"net/http"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/service"
	"github.com/dafibh/lendbook/lendbook-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// IndividualChitHandler handles per-borrower chit schedules
type IndividualChitHandler struct {
	chitService       *service.IndividualChitService
	adjustmentService *service.AdjustmentService
}

// NewIndividualChitHandler creates a new IndividualChitHandler
func NewIndividualChitHandler(chitService *service.IndividualChitService, adjustmentService *service.AdjustmentService) *IndividualChitHandler {
	return &IndividualChitHandler{
		chitService:       chitService,
		adjustmentService: adjustmentService,
	}
}

// IndividualChitRequest represents the create/update chit request body
type IndividualChitRequest struct {
	BorrowerName   string   `json:"borrowerName"`
	ChitName       string   `json:"chitName"`
	TotalMonths    int32    `json:"totalMonths"`
	StartDate      string   `json:"startDate"`
	MonthlyAmounts []string `json:"monthlyAmounts"`
	PrizedMonth    *int32   `json:"prizedMonth,omitempty"`
	PrizeAmount    *string  `json:"prizeAmount,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// PayLineRequest represents a cash payment toward a schedule line
type PayLineRequest struct {
	Amount      string  `json:"amount"`
	PaidDate    string  `json:"paidDate"`
	PaymentMode *string `json:"paymentMode,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// AdjustLineRequest represents a schedule adjustment from loan interest
type AdjustLineRequest struct {
	LoanID        int32  `json:"loanId"`
	InterestMonth string `json:"interestMonth"`
	Amount        string `json:"amount"`
	Notes         string `json:"notes"`
	Date          string `json:"date"`
}

// parsedChit holds a decoded IndividualChitRequest
type parsedChit struct {
	req         IndividualChitRequest
	startDate   time.Time
	amounts     []decimal.Decimal
	prizeAmount *decimal.Decimal
}

func bindIndividualChit(c echo.Context) (*parsedChit, *ValidationError) {
	var req IndividualChitRequest
	if err := c.Bind(&req); err != nil {
		return nil, &ValidationError{Message: "Invalid request body"}
	}
	startDate, err := util.ParseDate(req.StartDate)
	if err != nil {
		return nil, &ValidationError{Field: "startDate", Message: "Start date must be in YYYY-MM-DD format"}
	}
	amounts := make([]decimal.Decimal, 0, len(req.MonthlyAmounts))
	for _, raw := range req.MonthlyAmounts {
		amount, err := parseMoney(raw, true)
		if err != nil {
			return nil, &ValidationError{Field: "monthlyAmounts", Message: "All amounts must be valid decimal numbers"}
		}
		amounts = append(amounts, amount)
	}
	prize, err := parseOptionalMoney(req.PrizeAmount)
	if err != nil {
		return nil, &ValidationError{Field: "prizeAmount", Message: "Prize amount must be a valid decimal number"}
	}
	return &parsedChit{req: req, startDate: startDate, amounts: amounts, prizeAmount: prize}, nil
}

// CreateIndividualChit handles POST /api/v1/chits
// @Summary Create an individual chit with its schedule
// @Tags chits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IndividualChitRequest true "Chit"
// @Success 201 {object} domain.IndividualChit
// @Failure 400 {object} ProblemDetails
// @Router /chits [post]
func (h *IndividualChitHandler) CreateIndividualChit(c echo.Context) error {
	parsed, verr := bindIndividualChit(c)
	if verr != nil {
		return fieldError(c, verr.Field, verr.Message)
	}
	chit, err := h.chitService.CreateIndividualChit(c.Request().Context(), service.CreateIndividualChitInput{
		BorrowerName:   parsed.req.BorrowerName,
		ChitName:       parsed.req.ChitName,
		TotalMonths:    parsed.req.TotalMonths,
		StartDate:      parsed.startDate,
		MonthlyAmounts: parsed.amounts,
		PrizedMonth:    parsed.req.PrizedMonth,
		PrizeAmount:    parsed.prizeAmount,
		Notes:          parsed.req.Notes,
	})
	if err != nil {
		return respondError(c, err, "create chit")
	}
	return c.JSON(http.StatusCreated, chit)
}

// ListIndividualChits handles GET /api/v1/chits
// @Summary List individual chits
// @Tags chits
// @Produce json
// @Security BearerAuth
// @Param status query string false "Active or Closed"
// @Success 200 {array} domain.IndividualChit
// @Router /chits [get]
func (h *IndividualChitHandler) ListIndividualChits(c echo.Context) error {
	status, ok := chitStatusQuery(c)
	if !ok {
		return fieldError(c, "status", "Status must be Active or Closed")
	}
	chits, err := h.chitService.ListIndividualChits(c.Request().Context(), status)
	if err != nil {
		return respondError(c, err, "list chits")
	}
	return c.JSON(http.StatusOK, chits)
}

// GetIndividualChit handles GET /api/v1/chits/:id
// @Summary Get an individual chit with its schedule
// @Tags chits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chit ID"
// @Success 200 {object} domain.IndividualChit
// @Failure 404 {object} ProblemDetails
// @Router /chits/{id} [get]
func (h *IndividualChitHandler) GetIndividualChit(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid chit ID")
	}
	chit, err := h.chitService.GetIndividualChit(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "get chit")
	}
	return c.JSON(http.StatusOK, chit)
}

// UpdateIndividualChit handles PUT /api/v1/chits/:id
// @Summary Update a chit and re-price its open schedule lines
// @Tags chits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chit ID"
// @Param request body IndividualChitRequest true "Chit"
// @Success 200 {object} domain.IndividualChit
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /chits/{id} [put]
func (h *IndividualChitHandler) UpdateIndividualChit(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid chit ID")
	}
	parsed, verr := bindIndividualChit(c)
	if verr != nil {
		return fieldError(c, verr.Field, verr.Message)
	}
	chit, err := h.chitService.UpdateIndividualChit(c.Request().Context(), id, domain.IndividualChitUpdate{
		BorrowerName:   parsed.req.BorrowerName,
		ChitName:       parsed.req.ChitName,
		StartDate:      parsed.startDate,
		PrizedMonth:    parsed.req.PrizedMonth,
		PrizeAmount:    parsed.prizeAmount,
		Notes:          parsed.req.Notes,
		MonthlyAmounts: parsed.amounts,
	}, util.Today())
	if err != nil {
		return respondError(c, err, "update chit")
	}
	return c.JSON(http.StatusOK, chit)
}

// CloseIndividualChit handles POST /api/v1/chits/:id/close
// @Summary Close an individual chit
// @Tags chits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chit ID"
// @Success 200 {object} domain.IndividualChit
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /chits/{id}/close [post]
func (h *IndividualChitHandler) CloseIndividualChit(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid chit ID")
	}
	chit, err := h.chitService.CloseIndividualChit(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "close chit")
	}
	return c.JSON(http.StatusOK, chit)
}

// PayScheduleLine handles POST /api/v1/chit-schedule/:lineId/pay
// @Summary Pay cash toward a schedule line
// @Tags chits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lineId path int true "Schedule line ID"
// @Param request body PayLineRequest true "Payment"
// @Success 200 {object} domain.ScheduleLineDetail
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /chit-schedule/{lineId}/pay [post]
func (h *IndividualChitHandler) PayScheduleLine(c echo.Context) error {
	lineID, ok := paramID(c, "lineId")
	if !ok {
		return fieldError(c, "lineId", "Invalid schedule line ID")
	}
	var req PayLineRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	amount, err := parseMoney(req.Amount, false)
	if err != nil {
		return fieldError(c, "amount", "Amount must be a valid decimal number")
	}
	paidDate, err := parseOptionalDate(req.PaidDate)
	if err != nil {
		return fieldError(c, "paidDate", "Paid date must be in YYYY-MM-DD format")
	}

	line, err := h.chitService.PayScheduleLine(c.Request().Context(), service.PayScheduleLineInput{
		LineID:      lineID,
		Amount:      amount,
		PaidDate:    paidDate,
		PaymentMode: req.PaymentMode,
		Notes:       req.Notes,
	})
	if err != nil {
		return respondError(c, err, "pay schedule line")
	}
	return c.JSON(http.StatusOK, line)
}

// AdjustScheduleLine handles POST /api/v1/chit-schedule/:lineId/adjust
// @Summary Settle a schedule line from a loan's unpaid interest
// @Tags chits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lineId path int true "Schedule line ID"
// @Param request body AdjustLineRequest true "Adjustment"
// @Success 200 {object} domain.ScheduleAdjustmentResult
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /chit-schedule/{lineId}/adjust [post]
func (h *IndividualChitHandler) AdjustScheduleLine(c echo.Context) error {
	lineID, ok := paramID(c, "lineId")
	if !ok {
		return fieldError(c, "lineId", "Invalid schedule line ID")
	}
	var req AdjustLineRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.LoanID <= 0 {
		return fieldError(c, "loanId", "Loan ID is required")
	}
	requested, err := parseMoney(req.Amount, false)
	if err != nil {
		return fieldError(c, "amount", "Amount must be a valid decimal number")
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return fieldError(c, "date", "Date must be in YYYY-MM-DD format")
	}

	result, err := h.adjustmentService.AdjustScheduleFromInterest(c.Request().Context(), service.ScheduleAdjustmentInput{
		LineID:        lineID,
		LoanID:        req.LoanID,
		InterestMonth: domain.Period(req.InterestMonth),
		Requested:     requested,
		Notes:         req.Notes,
		Date:          date,
	})
	if err != nil {
		return respondError(c, err, "adjust schedule line")
	}
	return c.JSON(http.StatusOK, result)
}

// ListPendingDues handles GET /api/v1/pending-chit-dues
// @Summary Unsettled schedule lines due on or before a date
// @Tags chits
// @Produce json
// @Security BearerAuth
// @Param asOf query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {array} domain.ScheduleLineDetail
// @Router /pending-chit-dues [get]
func (h *IndividualChitHandler) ListPendingDues(c echo.Context) error {
	asOf, err := parseOptionalDate(c.QueryParam("asOf"))
	if err != nil {
		return fieldError(c, "asOf", "asOf must be in YYYY-MM-DD format")
	}
	dues, err := h.chitService.PendingScheduleDues(c.Request().Context(), asOf)
	if err != nil {
		return respondError(c, err, "list pending dues")
	}
	return c.JSON(http.StatusOK, dues)
}

// ListOutOfPocket handles GET /api/v1/out-of-pocket-payments
// @Summary Schedule lines settled at least partly in cash
// @Tags chits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.OutOfPocketPayment
// @Router /out-of-pocket-payments [get]
func (h *IndividualChitHandler) ListOutOfPocket(c echo.Context) error {
	payments, err := h.chitService.OutOfPocketPayments(c.Request().Context())
	if err != nil {
		return respondError(c, err, "list out-of-pocket payments")
	}
	return c.JSON(http.StatusOK, payments)
}
