package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	availabilityRepo "github.com/Cameron8325/teahouse-booking/internal/infra/storage/availability"
	settingsRepo "github.com/Cameron8325/teahouse-booking/internal/infra/storage/settings"
	identityClient "github.com/Cameron8325/teahouse-booking/internal/integrations/identityservice"
)

// UseCase use case создания записи на посещение
// Использует сериализуемую транзакцию для предотвращения гонки при
// конкурентной записи на последний слот дня
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	settingsRepo     SettingsRepository
	identityClient   IdentityServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	defaultCapacity  int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	settingsRepo SettingsRepository,
	identityClient IdentityServiceClient,
	txManager TransactionManager,
	defaultCapacity int,
	logger Logger,
) *UseCase {
	if defaultCapacity <= 0 {
		defaultCapacity = domain.DefaultDayCapacity
	}
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		settingsRepo:     settingsRepo,
		identityClient:   identityClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		defaultCapacity:  defaultCapacity,
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Новая запись всегда создается со статусом pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, date=%s", req.UserID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateNotPast(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: past date rejected: %v", err)
		return nil, err
	}

	// 3. Подтверждаем личность пользователя
	if _, err := uc.identityClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateAppointment: identity check failed for user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}

	var result *domain.Appointment
	var dayType domain.DayType

	// 4. Проверка доступности и создание в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. На дату должна быть назначена доступность
		day, err := uc.availabilityRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrDayNotFound) {
				uc.logger.Warn("CreateAppointment: date %s is not open for booking", req.Date)
				return ErrDayNotBookable
			}
			uc.logger.Error("CreateAppointment: failed to get day %s: %v", req.Date, err)
			return fmt.Errorf("%w: failed to get day: %v", ErrInternal, err)
		}
		dayType = day.Type

		// 4.2. Определяем потолок вместимости (переопределение даты или дефолт)
		capacity := uc.defaultCapacity
		override, err := uc.settingsRepo.GetByDate(txCtx, req.Date)
		if err != nil && !errors.Is(err, settingsRepo.ErrOverrideNotFound) {
			uc.logger.Error("CreateAppointment: failed to get capacity override: %v", err)
			return fmt.Errorf("%w: failed to get capacity override: %v", ErrInternal, err)
		}
		if override != nil {
			capacity = override.Capacity
			uc.logger.Info("CreateAppointment: capacity override %d for %s", capacity, req.Date)
		}

		// 4.3. Проверяем вместимость - считаются все записи независимо от статуса
		count, err := uc.appointmentRepo.CountByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count appointments: %v", err)
			return fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
		}

		if count >= capacity {
			uc.logger.Warn("CreateAppointment: date %s fully booked, %d/%d slots taken",
				req.Date, count, capacity)
			return ErrDayFullyBooked
		}

		// 4.4. Создаем запись
		appt := &domain.Appointment{
			UserID: req.UserID,
			Date:   req.Date,
			Status: domain.StatusPending,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		Date:      result.Date,
		Status:    string(result.Status),
		DayType:   dayType,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
