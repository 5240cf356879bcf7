// Package http provides the HTTP handler layer for the flight search validator.
package http

// SearchResponse is the JSON view of an accepted search request.
type SearchResponse struct {
	DepartureDate          string `json:"departureDate" example:"25/12/2025"`
	DepartureAirportCode   string `json:"departureAirportCode" example:"syd"`
	EmergencyRowSeating    bool   `json:"emergencyRowSeating" example:"false"`
	ReturnDate             string `json:"returnDate" example:"30/12/2025"`
	DestinationAirportCode string `json:"destinationAirportCode" example:"mel"`
	SeatingClass           string `json:"seatingClass" example:"economy"`
	AdultPassengerCount    int    `json:"adultPassengerCount" example:"2"`
	ChildPassengerCount    int    `json:"childPassengerCount" example:"1"`
	InfantPassengerCount   int    `json:"infantPassengerCount" example:"0"`
}

// ViolationResponse describes one broken business rule.
type ViolationResponse struct {
	// Rule is the machine-readable rule ID (e.g., "child_ratio")
	Rule string `json:"rule" example:"child_ratio"`

	// Message explains the violation
	Message string `json:"message" example:"3 children exceed the limit of 2 per adult (1 adults)"`
}

// ValidationResultResponse is returned by POST /api/v1/searches/validate.
type ValidationResultResponse struct {
	// Accepted is true when the request passed every rule and was stored
	Accepted bool `json:"accepted" example:"true"`

	// Request echoes the stored request when accepted
	Request *SearchResponse `json:"request,omitempty"`

	// Violations lists the broken rules when rejected
	Violations []ViolationResponse `json:"violations,omitempty"`
}
