package compose_calendar

import (
	"context"
	"fmt"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/internal/infra/storage/appointment"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// UseCase use case композиции событий календаря
//
// Композиция - чистая функция над снимками: доступные дни, записи и
// переопределения вместимости читаются один раз, дальше никакого
// обращения к хранилищу не происходит
type UseCase struct {
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	settingsRepo     SettingsRepository
	defaultCapacity  int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	defaultCapacity int,
	logger Logger,
) *UseCase {
	if defaultCapacity <= 0 {
		defaultCapacity = domain.DefaultDayCapacity
	}
	return &UseCase{
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		settingsRepo:     settingsRepo,
		defaultCapacity:  defaultCapacity,
		logger:           logger,
	}
}

// Execute собирает и фильтрует события календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComposeCalendar: filter=%s", req.TypeFilter)

	// 1. Валидация фильтра
	if req.TypeFilter == "" {
		req.TypeFilter = domain.FilterAll
	}
	if req.TypeFilter != domain.FilterAll && !domain.DayType(req.TypeFilter).IsValid() {
		uc.logger.Warn("ComposeCalendar: unknown day type filter %q", req.TypeFilter)
		return nil, fmt.Errorf("%w: unknown day type %q", ErrInvalidInput, req.TypeFilter)
	}

	// 2. Читаем снимки данных
	days, err := uc.availabilityRepo.List(ctx)
	if err != nil {
		uc.logger.Error("ComposeCalendar: failed to list available days: %v", err)
		return nil, fmt.Errorf("%w: failed to list available days: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.List(ctx, appointment.Filter{})
	if err != nil {
		uc.logger.Error("ComposeCalendar: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	overridesList, err := uc.settingsRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("ComposeCalendar: failed to list capacity overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to list capacity overrides: %v", ErrInternal, err)
	}

	overrides := make(map[types.DateString]int, len(overridesList))
	for _, o := range overridesList {
		overrides[o.Date] = o.Capacity
	}

	// 3. Чистая композиция и фильтрация
	events := composeEvents(days, appointments, overrides, uc.defaultCapacity)
	events = filterByType(events, req.TypeFilter)

	uc.logger.Info("ComposeCalendar: composed %d events for %d days", len(events), len(days))

	return &Response{Events: events}, nil
}
