package remove_availability

import (
	removeAvailability "github.com/Cameron8325/teahouse-booking/internal/usecase/remove_availability"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// RemoveAvailabilityRequest HTTP request model
type RemoveAvailabilityRequest struct {
	Dates []string `json:"dates"`
}

// FailedDate дата с причиной, по которой она не удалена
type FailedDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// RemoveAvailabilityResponse HTTP response model
// Частичный успех отражается непустым списком failed
type RemoveAvailabilityResponse struct {
	Removed []string     `json:"removed"`
	Failed  []FailedDate `json:"failed"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *RemoveAvailabilityRequest) ToUseCaseRequest() (*removeAvailability.Request, error) {
	dates := make([]types.DateString, len(r.Dates))
	for i, s := range r.Dates {
		date, err := types.NewDateStringFromString(s)
		if err != nil {
			return nil, err
		}
		dates[i] = date
	}
	return &removeAvailability.Request{Dates: dates}, nil
}

// FromUseCaseReport конвертирует отчет use case в HTTP response
func FromUseCaseReport(report *removeAvailability.Report) *RemoveAvailabilityResponse {
	removed := make([]string, len(report.Removed))
	for i, d := range report.Removed {
		removed[i] = d.String()
	}

	failed := make([]FailedDate, len(report.Failed))
	for i, f := range report.Failed {
		failed[i] = FailedDate{
			Date:   f.Date.String(),
			Reason: f.Reason,
		}
	}

	return &RemoveAvailabilityResponse{
		Removed: removed,
		Failed:  failed,
	}
}
