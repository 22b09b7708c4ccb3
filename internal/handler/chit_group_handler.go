package handler

import (
	"net/http"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ChitGroupHandler handles chit group and borrower-chit link HTTP requests
type ChitGroupHandler struct {
	chitService *service.ChitService
}

// NewChitGroupHandler creates a new ChitGroupHandler
func NewChitGroupHandler(chitService *service.ChitService) *ChitGroupHandler {
	return &ChitGroupHandler{chitService: chitService}
}

// ChitGroupRequest represents the create/update chit group request body
type ChitGroupRequest struct {
	Name               string  `json:"name"`
	MonthlyInstallment string  `json:"monthlyInstallment"`
	StartMonth         string  `json:"startMonth"`
	Notes              *string `json:"notes,omitempty"`
}

// CloseChitGroupRequest represents the close chit group request body
type CloseChitGroupRequest struct {
	ClosedMonth string `json:"closedMonth"`
}

// LinkRequest represents the link borrower request body
type LinkRequest struct {
	BorrowerID int32   `json:"borrowerId"`
	ChitID     int32   `json:"chitId"`
	Notes      *string `json:"notes,omitempty"`
}

func bindChitGroup(c echo.Context) (service.ChitGroupInput, *ValidationError) {
	var req ChitGroupRequest
	if err := c.Bind(&req); err != nil {
		return service.ChitGroupInput{}, &ValidationError{Message: "Invalid request body"}
	}
	installment, err := parseMoney(req.MonthlyInstallment, false)
	if err != nil {
		return service.ChitGroupInput{}, &ValidationError{Field: "monthlyInstallment", Message: "Monthly installment must be a valid decimal number"}
	}
	return service.ChitGroupInput{
		Name:               req.Name,
		MonthlyInstallment: installment,
		StartMonth:         domain.Period(req.StartMonth),
		Notes:              req.Notes,
	}, nil
}

// CreateChitGroup handles POST /api/v1/chit-groups
// @Summary Create a chit group
// @Tags chit-groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChitGroupRequest true "Chit group"
// @Success 201 {object} domain.ChitGroup
// @Failure 400 {object} ProblemDetails
// @Router /chit-groups [post]
func (h *ChitGroupHandler) CreateChitGroup(c echo.Context) error {
	input, verr := bindChitGroup(c)
	if verr != nil {
		return fieldError(c, verr.Field, verr.Message)
	}
	chit, err := h.chitService.CreateChitGroup(c.Request().Context(), input)
	if err != nil {
		return respondError(c, err, "create chit group")
	}
	return c.JSON(http.StatusCreated, chit)
}

// ListChitGroups handles GET /api/v1/chit-groups
// @Summary List chit groups
// @Tags chit-groups
// @Produce json
// @Security BearerAuth
// @Param status query string false "Active or Closed"
// @Success 200 {array} domain.ChitGroup
// @Router /chit-groups [get]
func (h *ChitGroupHandler) ListChitGroups(c echo.Context) error {
	status, ok := chitStatusQuery(c)
	if !ok {
		return fieldError(c, "status", "Status must be Active or Closed")
	}
	chits, err := h.chitService.ListChitGroups(c.Request().Context(), status)
	if err != nil {
		return respondError(c, err, "list chit groups")
	}
	return c.JSON(http.StatusOK, chits)
}

// GetChitGroup handles GET /api/v1/chit-groups/:id
// @Summary Get a chit group
// @Tags chit-groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chit group ID"
// @Success 200 {object} domain.ChitGroup
// @Failure 404 {object} ProblemDetails
// @Router /chit-groups/{id} [get]
func (h *ChitGroupHandler) GetChitGroup(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid chit group ID")
	}
	chit, err := h.chitService.GetChitGroup(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "get chit group")
	}
	return c.JSON(http.StatusOK, chit)
}

// UpdateChitGroup handles PUT /api/v1/chit-groups/:id
// @Summary Update a chit group
// @Tags chit-groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chit group ID"
// @Param request body ChitGroupRequest true "Chit group"
// @Success 200 {object} domain.ChitGroup
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /chit-groups/{id} [put]
func (h *ChitGroupHandler) UpdateChitGroup(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid chit group ID")
	}
	input, verr := bindChitGroup(c)
	if verr != nil {
		return fieldError(c, verr.Field, verr.Message)
	}
	chit, err := h.chitService.UpdateChitGroup(c.Request().Context(), id, input)
	if err != nil {
		return respondError(c, err, "update chit group")
	}
	return c.JSON(http.StatusOK, chit)
}

// CloseChitGroup handles POST /api/v1/chit-groups/:id/close
// @Summary Close a chit group
// @Tags chit-groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chit group ID"
// @Param request body CloseChitGroupRequest true "Last month of membership"
// @Success 200 {object} domain.ChitGroup
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /chit-groups/{id}/close [post]
func (h *ChitGroupHandler) CloseChitGroup(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fieldError(c, "id", "Invalid chit group ID")
	}
	var req CloseChitGroupRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	chit, err := h.chitService.CloseChitGroup(c.Request().Context(), id, domain.Period(req.ClosedMonth))
	if err != nil {
		return respondError(c, err, "close chit group")
	}
	return c.JSON(http.StatusOK, chit)
}

// CreateLink handles POST /api/v1/borrower-chit-links
// @Summary Link a borrower to a chit group
// @Tags borrower-chit-links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LinkRequest true "Link"
// @Success 201 {object} domain.BorrowerChitLink
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /borrower-chit-links [post]
func (h *ChitGroupHandler) CreateLink(c echo.Context) error {
	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.BorrowerID <= 0 || req.ChitID <= 0 {
		return NewValidationError(c, "Borrower and chit are required", []ValidationError{
			{Field: "borrowerId", Message: "Borrower ID is required"},
			{Field: "chitId", Message: "Chit ID is required"},
		})
	}
	link, err := h.chitService.LinkBorrowerToChit(c.Request().Context(), req.BorrowerID, req.ChitID, req.Notes)
	if err != nil {
		return respondError(c, err, "link borrower")
	}
	return c.JSON(http.StatusCreated, link)
}

// ListLinks handles GET /api/v1/borrower-chit-links
// @Summary List borrower-chit links
// @Tags borrower-chit-links
// @Produce json
// @Security BearerAuth
// @Param borrowerId query int false "Borrower ID"
// @Param chitId query int false "Chit group ID"
// @Success 200 {array} domain.BorrowerChitLink
// @Router /borrower-chit-links [get]
func (h *ChitGroupHandler) ListLinks(c echo.Context) error {
	borrowerID, ok := optionalIDQuery(c, "borrowerId")
	if !ok {
		return fieldError(c, "borrowerId", "Invalid borrower ID")
	}
	chitID, ok := optionalIDQuery(c, "chitId")
	if !ok {
		return fieldError(c, "chitId", "Invalid chit ID")
	}
	links, err := h.chitService.ListLinks(c.Request().Context(), domain.LinkFilter{BorrowerID: borrowerID, ChitID: chitID})
	if err != nil {
		return respondError(c, err, "list links")
	}
	return c.JSON(http.StatusOK, links)
}

// DeleteLink handles DELETE /api/v1/borrower-chit-links/:borrowerId/:chitId
// @Summary Unlink a borrower from a chit group
// @Tags borrower-chit-links
// @Security BearerAuth
// @Param borrowerId path int true "Borrower ID"
// @Param chitId path int true "Chit group ID"
// @Success 204 "No Content"
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /borrower-chit-links/{borrowerId}/{chitId} [delete]
func (h *ChitGroupHandler) DeleteLink(c echo.Context) error {
	borrowerID, ok := paramID(c, "borrowerId")
	if !ok {
		return fieldError(c, "borrowerId", "Invalid borrower ID")
	}
	chitID, ok := paramID(c, "chitId")
	if !ok {
		return fieldError(c, "chitId", "Invalid chit ID")
	}
	if err := h.chitService.UnlinkBorrowerFromChit(c.Request().Context(), borrowerID, chitID); err != nil {
		return respondError(c, err, "unlink borrower")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetChitMonthView handles GET /api/v1/chit-month-view/:borrowerId/:chitId/:month
// @Summary Settlement of one chit period for a borrower
// @Tags chit-groups
// @Produce json
// @Security BearerAuth
// @Param borrowerId path int true "Borrower ID"
// @Param chitId path int true "Chit group ID"
// @Param month path string true "YYYY-MM"
// @Success 200 {object} domain.ChitMonthView
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /chit-month-view/{borrowerId}/{chitId}/{month} [get]
func (h *ChitGroupHandler) GetChitMonthView(c echo.Context) error {
	borrowerID, ok := paramID(c, "borrowerId")
	if !ok {
		return fieldError(c, "borrowerId", "Invalid borrower ID")
	}
	chitID, ok := paramID(c, "chitId")
	if !ok {
		return fieldError(c, "chitId", "Invalid chit ID")
	}
	view, err := h.chitService.ChitMonthView(c.Request().Context(), borrowerID, chitID, domain.Period(c.Param("month")))
	if err != nil {
		return respondError(c, err, "load chit month view")
	}
	return c.JSON(http.StatusOK, view)
}

// GetBorrowerChitSummary handles GET /api/v1/borrower-chit-summary/:borrowerId
// @Summary Contribution totals per linked chit group
// @Tags chit-groups
// @Produce json
// @Security BearerAuth
// @Param borrowerId path int true "Borrower ID"
// @Success 200 {array} domain.BorrowerChitSummary
// @Failure 404 {object} ProblemDetails
// @Router /borrower-chit-summary/{borrowerId} [get]
func (h *ChitGroupHandler) GetBorrowerChitSummary(c echo.Context) error {
	borrowerID, ok := paramID(c, "borrowerId")
	if !ok {
		return fieldError(c, "borrowerId", "Invalid borrower ID")
	}
	summary, err := h.chitService.BorrowerChitSummary(c.Request().Context(), borrowerID)
	if err != nil {
		return respondError(c, err, "load borrower chit summary")
	}
	return c.JSON(http.StatusOK, summary)
}

// chitStatusQuery reads an optional ?status= chit status filter
func chitStatusQuery(c echo.Context) (*domain.ChitStatus, bool) {
	switch status := domain.ChitStatus(c.QueryParam("status")); status {
	case "":
		return nil, true
	case domain.ChitStatusActive, domain.ChitStatusClosed:
		return &status, true
	default:
		return nil, false
	}
}
