package assign_availability

import (
	"github.com/Cameron8325/teahouse-booking/internal/domain"
	assignAvailability "github.com/Cameron8325/teahouse-booking/internal/usecase/assign_availability"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// AssignAvailabilityRequest HTTP request model
type AssignAvailabilityRequest struct {
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate,omitempty"`
	Type      string  `json:"type"`
}

// AssignAvailabilityResponse HTTP response model
type AssignAvailabilityResponse struct {
	Type  string   `json:"type"`
	Dates []string `json:"dates"`
}

// ConflictResponse тело ответа при конфликте доступности
type ConflictResponse struct {
	Error         string   `json:"error"`
	ConflictDates []string `json:"conflictDates"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *AssignAvailabilityRequest) ToUseCaseRequest() (*assignAvailability.Request, error) {
	startDate, err := types.NewDateStringFromString(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate := startDate
	if r.EndDate != nil {
		endDate, err = types.NewDateStringFromString(*r.EndDate)
		if err != nil {
			return nil, err
		}
	}

	return &assignAvailability.Request{
		StartDate: startDate,
		EndDate:   endDate,
		Type:      domain.DayType(r.Type),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignAvailability.Response) *AssignAvailabilityResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.String()
	}
	return &AssignAvailabilityResponse{
		Type:  string(resp.Type),
		Dates: dates,
	}
}
