// Package http provides the HTTP handler layer for the flight search validator.
// It handles request parsing, structural validation, and response formatting.
package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateSearchRequest represents the request body for search validation.
// Counts and the emergency-row flag are pointers so that a missing field can be
// told apart from an explicit zero or false.
type ValidateSearchRequest struct {
	// DepartureDate is the outbound date in dd/mm/yyyy format (e.g., "25/12/2025")
	DepartureDate string `json:"departureDate" validate:"required" example:"25/12/2025"`

	// DepartureAirportCode is the origin airport (e.g., "syd")
	DepartureAirportCode string `json:"departureAirportCode" validate:"required" example:"syd"`

	// EmergencyRowSeating requests seats in an exit row
	EmergencyRowSeating *bool `json:"emergencyRowSeating" validate:"required" example:"false"`

	// ReturnDate is the inbound date in dd/mm/yyyy format (e.g., "30/12/2025")
	ReturnDate string `json:"returnDate" validate:"required" example:"30/12/2025"`

	// DestinationAirportCode is the arrival airport (e.g., "mel")
	DestinationAirportCode string `json:"destinationAirportCode" validate:"required" example:"mel"`

	// SeatingClass is one of economy, premium economy, business, first
	SeatingClass string `json:"seatingClass" validate:"required" example:"economy"`

	AdultPassengerCount  *int `json:"adultPassengerCount" validate:"required,gte=0" example:"2"`
	ChildPassengerCount  *int `json:"childPassengerCount" validate:"required,gte=0" example:"1"`
	InfantPassengerCount *int `json:"infantPassengerCount" validate:"required,gte=0" example:"0"`
}

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Field + ": " + v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks that every field is present and every count is non-negative.
// Business rules are not evaluated here.
func (r *ValidateSearchRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := &ValidationErrors{}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), fieldErrorMessage(fe))
	}
	return errs
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
