package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	settingsRepo "github.com/Cameron8325/teahouse-booking/internal/infra/storage/settings"
	"github.com/Cameron8325/teahouse-booking/internal/service/settings/models"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// Service сервис управления вместимостью дней
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// SetDayCapacity устанавливает переопределение вместимости на дату
func (s *Service) SetDayCapacity(ctx context.Context, date types.DateString, capacity int) (*models.OverrideResponse, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: SetDayCapacity - %v", ErrInvalidInput, err)
	}
	if capacity < domain.MinDayCapacity || capacity > domain.MaxDayCapacity {
		s.logger.Warn("SetDayCapacity: capacity %d out of range [%d, %d]", capacity, domain.MinDayCapacity, domain.MaxDayCapacity)
		return nil, fmt.Errorf("%w: SetDayCapacity - capacity %d", ErrInvalidCapacity, capacity)
	}

	override, err := s.settingsRepo.Upsert(ctx, date, capacity)
	if err != nil {
		s.logger.Error("SetDayCapacity: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetDayCapacity - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetDayCapacity: date=%s capacity=%d", date, capacity)
	return models.FromOverride(override), nil
}

// RemoveDayCapacity снимает переопределение, возвращая дате вместимость по умолчанию
func (s *Service) RemoveDayCapacity(ctx context.Context, date types.DateString) error {
	if err := date.Validate(); err != nil {
		return fmt.Errorf("%w: RemoveDayCapacity - %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.Delete(ctx, date); err != nil {
		if errors.Is(err, settingsRepo.ErrOverrideNotFound) {
			return fmt.Errorf("%w: RemoveDayCapacity - date %s", ErrOverrideNotFound, date)
		}
		s.logger.Error("RemoveDayCapacity: repository error: %v", err)
		return fmt.Errorf("%w: RemoveDayCapacity - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveDayCapacity: date=%s", date)
	return nil
}

// ListOverrides возвращает все действующие переопределения вместимости
func (s *Service) ListOverrides(ctx context.Context) (*models.OverrideListResponse, error) {
	overrides, err := s.settingsRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOverrides - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListOverrides: fetched %d overrides", len(overrides))
	return models.FromOverrideList(overrides), nil
}
