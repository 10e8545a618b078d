package models

import (
	"time"

	settingsRepo "github.com/Cameron8325/teahouse-booking/internal/infra/storage/settings"
)

// OverrideResponse модель переопределения вместимости для выдачи
type OverrideResponse struct {
	Date      string `json:"date"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// OverrideListResponse список переопределений вместимости
type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// FromOverride конвертирует переопределение в модель выдачи
func FromOverride(ov *settingsRepo.CapacityOverride) *OverrideResponse {
	return &OverrideResponse{
		Date:      ov.Date.String(),
		Capacity:  ov.Capacity,
		CreatedAt: ov.CreatedAt.Format(time.RFC3339),
		UpdatedAt: ov.UpdatedAt.Format(time.RFC3339),
	}
}

// FromOverrideList конвертирует список переопределений
func FromOverrideList(ovs []*settingsRepo.CapacityOverride) *OverrideListResponse {
	result := make([]OverrideResponse, len(ovs))
	for i, ov := range ovs {
		result[i] = *FromOverride(ov)
	}
	return &OverrideListResponse{Overrides: result}
}
