package availability

import (
	"context"
	"fmt"

	"github.com/Cameron8325/teahouse-booking/internal/service/availability/models"
)

// Service сервис чтения доступности
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// ListDays возвращает все доступные дни, отсортированные по дате
func (s *Service) ListDays(ctx context.Context) (*models.DayListResponse, error) {
	days, err := s.availabilityRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListDays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDays - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListDays: fetched %d days", len(days))
	return models.FromDomainDays(days), nil
}

// ListBlocks возвращает доступность, сгруппированную в блоки
// последовательных дней одного типа
//
// Блоки - производное представление: они пересчитываются на каждом
// запросе из свежего снимка доступных дней и нигде не хранятся
func (s *Service) ListBlocks(ctx context.Context) (*models.BlockListResponse, error) {
	days, err := s.availabilityRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}

	blocks := groupBlocks(days)

	s.logger.Info("ListBlocks: grouped %d days into %d blocks", len(days), len(blocks))
	return models.FromDomainBlocks(blocks), nil
}
