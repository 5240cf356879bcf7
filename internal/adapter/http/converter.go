// Package http provides the HTTP handler layer for the flight search validator.
package http

import (
	"github.com/flight-search/flight-search-validator/internal/domain"
	"github.com/flight-search/flight-search-validator/internal/usecase"
)

// ToDomainRequest converts a structurally valid DTO to a domain.SearchRequest.
// Call Validate first; nil pointers are treated as zero values.
func ToDomainRequest(req *ValidateSearchRequest) domain.SearchRequest {
	return domain.SearchRequest{
		DepartureDate:          req.DepartureDate,
		DepartureAirportCode:   domain.Airport(req.DepartureAirportCode),
		EmergencyRowSeating:    derefBool(req.EmergencyRowSeating),
		ReturnDate:             req.ReturnDate,
		DestinationAirportCode: domain.Airport(req.DestinationAirportCode),
		SeatingClass:           domain.SeatingClass(req.SeatingClass),
		AdultPassengerCount:    derefInt(req.AdultPassengerCount),
		ChildPassengerCount:    derefInt(req.ChildPassengerCount),
		InfantPassengerCount:   derefInt(req.InfantPassengerCount),
	}
}

// ToSearchResponse converts a domain.SearchRequest to its JSON view.
func ToSearchResponse(req domain.SearchRequest) SearchResponse {
	return SearchResponse{
		DepartureDate:          req.DepartureDate,
		DepartureAirportCode:   req.DepartureAirportCode.String(),
		EmergencyRowSeating:    req.EmergencyRowSeating,
		ReturnDate:             req.ReturnDate,
		DestinationAirportCode: req.DestinationAirportCode.String(),
		SeatingClass:           req.SeatingClass.String(),
		AdultPassengerCount:    req.AdultPassengerCount,
		ChildPassengerCount:    req.ChildPassengerCount,
		InfantPassengerCount:   req.InfantPassengerCount,
	}
}

// ToValidationResultResponse converts a usecase.Result to its JSON view.
func ToValidationResultResponse(result usecase.Result) ValidationResultResponse {
	resp := ValidationResultResponse{Accepted: result.Accepted}
	if result.Request != nil {
		search := ToSearchResponse(*result.Request)
		resp.Request = &search
	}
	if len(result.Violations) > 0 {
		resp.Violations = make([]ViolationResponse, len(result.Violations))
		for i, v := range result.Violations {
			resp.Violations[i] = ViolationResponse{
				Rule:    string(v.Rule),
				Message: v.Message,
			}
		}
	}
	return resp
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefBool(p *bool) bool {
	return p != nil && *p
}
