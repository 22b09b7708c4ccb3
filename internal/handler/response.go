package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation   = "https://lendbook.app/errors/validation"
	ErrorTypeNotFound     = "https://lendbook.app/errors/not-found"
	ErrorTypeUnauthorized = "https://lendbook.app/errors/unauthorized"
	ErrorTypeInternal     = "https://lendbook.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnauthorizedError creates an unauthorized error response
func NewUnauthorizedError(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnauthorized, ProblemDetails{
		Type:     ErrorTypeUnauthorized,
		Title:    "Unauthorized",
		Status:   http.StatusUnauthorized,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// respondError maps a service error onto a problem response. Rule
// violations carry their reason verbatim.
func respondError(c echo.Context, err error, action string) error {
	var ve *domain.ValidationError
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &ve):
		return NewValidationError(c, ve.Reason, []ValidationError{{Field: ve.Field, Message: ve.Reason}})
	case errors.As(err, &nf):
		return NewNotFoundError(c, nf.Error())
	case errors.Is(err, domain.ErrInvalidPIN):
		return NewUnauthorizedError(c, "Invalid PIN")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionExpired):
		return NewUnauthorizedError(c, err.Error())
	}

	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Failed to " + action)
	return NewInternalError(c, "Failed to "+action)
}

// fieldError builds a single-field validation response
func fieldError(c echo.Context, field, message string) error {
	return NewValidationError(c, message, []ValidationError{{Field: field, Message: message}})
}

// paramID parses a positive int32 path parameter
func paramID(c echo.Context, name string) (int32, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

// parseMoney parses a decimal string. Empty strings are zero when optional.
func parseMoney(s string, optional bool) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" && optional {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// parseOptionalMoney parses a nil-able decimal string
func parseOptionalMoney(s *string) (*decimal.Decimal, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseOptionalDate parses a YYYY-MM-DD date, falling back to today
func parseOptionalDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return util.Today(), nil
	}
	return util.ParseDate(s)
}

// periodQuery reads a YYYY-MM query parameter, defaulting to the current month
func periodQuery(c echo.Context, name string) (domain.Period, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return domain.PeriodOf(util.Today()), nil
	}
	return domain.ParsePeriod(raw)
}

// optionalIDQuery reads an optional positive int32 query parameter
func optionalIDQuery(c echo.Context, name string) (*int32, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return nil, false
	}
	v := int32(id)
	return &v, true
}
