package assign_availability

import (
	"context"
	"fmt"

	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// UseCase use case назначения доступности на диапазон дат
//
// Проверка конфликтов и запись выполняются внутри одной сериализуемой
// транзакции (check-then-write). Это лучшее, что может дать хранилище:
// при конкурентной записи другим администратором транзакция повторится
// и конфликт будет обнаружен на свежем снимке
type UseCase struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case назначения доступности
// При конфликте возвращает *ConflictError со ВСЕМИ конфликтующими датами,
// не записывая ни одной даты диапазона (precondition gate, не фильтр)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignAvailability: start=%s, end=%s, type=%s", req.StartDate, req.EndDate, req.Type)

	// 1. Валидация входных данных (выставляет EndDate = StartDate, если конец не задан)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка, что диапазон не в прошлом - до любых обращений к хранилищу
	now := uc.timeProvider.Now()
	if err := validateNotPast(req.StartDate, now); err != nil {
		uc.logger.Warn("AssignAvailability: past date rejected: %v", err)
		return nil, err
	}

	// 3. Раскрываем диапазон в список дат
	dates, err := types.DatesInRange(req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("AssignAvailability: failed to expand range: %v", err)
		return nil, fmt.Errorf("%w: failed to expand range: %v", ErrInternal, err)
	}

	// 4. Проверяем конфликты и пишем в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.availabilityRepo.ListRange(txCtx, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("AssignAvailability: failed to list existing days: %v", err)
			return fmt.Errorf("%w: failed to list existing days: %v", ErrInternal, err)
		}

		conflicts := findConflicts(req.StartDate, req.EndDate, req.Type, existing)
		if len(conflicts) > 0 {
			uc.logger.Warn("AssignAvailability: %d conflicting days in [%s, %s]",
				len(conflicts), req.StartDate, req.EndDate)
			return &ConflictError{Dates: conflictDates(conflicts)}
		}

		for _, date := range dates {
			if _, err := uc.availabilityRepo.Upsert(txCtx, date, req.Type); err != nil {
				uc.logger.Error("AssignAvailability: failed to upsert %s: %v", date, err)
				return fmt.Errorf("%w: failed to upsert %s: %v", ErrInternal, date, err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignAvailability: wrote %d days of type %s", len(dates), req.Type)

	return &Response{
		Type:  req.Type,
		Dates: dates,
	}, nil
}
