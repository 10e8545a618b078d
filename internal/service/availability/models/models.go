package models

import "github.com/Cameron8325/teahouse-booking/internal/domain"

// DayResponse модель доступного дня для выдачи
type DayResponse struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	TypeLabel string `json:"typeLabel"`
}

// BlockResponse модель блока доступности для выдачи
type BlockResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Type      string `json:"type"`
	TypeLabel string `json:"typeLabel"`
	Days      int    `json:"days"`
}

// DayListResponse список доступных дней
type DayListResponse struct {
	Days []DayResponse `json:"days"`
}

// BlockListResponse список блоков доступности
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// FromDomainDays конвертирует доменные дни в модели выдачи
func FromDomainDays(days []*domain.AvailableDay) *DayListResponse {
	result := make([]DayResponse, len(days))
	for i, day := range days {
		result[i] = DayResponse{
			Date:      day.Date.String(),
			Type:      string(day.Type),
			TypeLabel: day.Type.Label(),
		}
	}
	return &DayListResponse{Days: result}
}

// FromDomainBlocks конвертирует доменные блоки в модели выдачи
func FromDomainBlocks(blocks []domain.AvailabilityBlock) *BlockListResponse {
	result := make([]BlockResponse, len(blocks))
	for i, block := range blocks {
		result[i] = BlockResponse{
			StartDate: block.StartDate.String(),
			EndDate:   block.EndDate.String(),
			Type:      string(block.Type),
			TypeLabel: block.Type.Label(),
			Days:      block.Days,
		}
	}
	return &BlockListResponse{Blocks: result}
}
