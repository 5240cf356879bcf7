// Package http provides the HTTP handler layer for the flight search validator.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-search-validator/internal/adapter/http/response"
	"github.com/flight-search/flight-search-validator/internal/domain"
	"github.com/flight-search/flight-search-validator/internal/usecase"
)

// SearchHandler handles HTTP requests for search validation endpoints.
type SearchHandler struct {
	validator usecase.SearchValidator
}

// NewSearchHandler creates a new SearchHandler with the given validator.
func NewSearchHandler(v usecase.SearchValidator) *SearchHandler {
	return &SearchHandler{
		validator: v,
	}
}

// ValidateSearch handles POST /api/v1/searches/validate
//
// @Summary Validate a flight search
// @Description Check a search request against the booking rules; accepted requests become the last search
// @Tags searches
// @Accept json
// @Produce json
// @Param request body ValidateSearchRequest true "Search parameters"
// @Success 200 {object} ValidationResultResponse
// @Failure 400 {object} response.ErrorDetail "Malformed or incomplete request"
// @Failure 429 {object} response.ErrorDetail "Rate limited"
// @Failure 503 {object} response.ErrorDetail "Snapshot store unavailable"
// @Router /api/v1/searches/validate [post]
func (h *SearchHandler) ValidateSearch(c echo.Context) error {
	var req ValidateSearchRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.validator.Validate(c.Request().Context(), ToDomainRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.ValidationResult(c, ToValidationResultResponse(result))
}

// LastSearch handles GET /api/v1/searches/last
//
// @Summary Get the last accepted search
// @Description Return the most recent search request that passed validation
// @Tags searches
// @Produce json
// @Success 200 {object} SearchResponse
// @Failure 404 {object} response.ErrorDetail "No search accepted yet"
// @Failure 503 {object} response.ErrorDetail "Snapshot store unavailable"
// @Router /api/v1/searches/last [get]
func (h *SearchHandler) LastSearch(c echo.Context) error {
	req, ok, err := h.validator.Snapshot(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	if !ok {
		return response.NotFound(c, response.MsgNoSearchYet)
	}

	return response.Snapshot(c, ToSearchResponse(req))
}

// handleValidationError handles structural validation errors and returns a 400 response.
func (h *SearchHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *SearchHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, domain.ErrSnapshotUnavailable):
		return response.ServiceUnavailable(c)
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	default:
		return response.InternalServerError(c)
	}
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *SearchHandler) Health(c echo.Context) error {
	return response.Health(c)
}
