// Package response provides standardized HTTP response builders for the flight search validator.
package response

import (
	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return OK(c, &HealthResponse{
		Status: "ok",
	})
}

// ValidationResult writes a 200 OK response with the outcome of a validation.
// Rejected requests are still a 200; the body carries accepted=false.
func ValidationResult(c echo.Context, result interface{}) error {
	return OK(c, result)
}

// Snapshot writes a 200 OK response with the last accepted search.
func Snapshot(c echo.Context, search interface{}) error {
	return OK(c, search)
}
