package remove_availability

import (
	"context"
	"errors"
	"fmt"

	availabilityRepo "github.com/Cameron8325/teahouse-booking/internal/infra/storage/availability"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// UseCase use case массового удаления дат из доступности
//
// Каждая дата удаляется независимо: ошибка одной даты не откатывает
// и не блокирует остальные. Вызывающая сторона получает отчет по каждой дате
type UseCase struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilityRepo AvailabilityRepository, logger Logger) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Execute выполняет удаление каждой даты и собирает пер-датовый отчет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Report, error) {
	if len(req.Dates) == 0 {
		return nil, fmt.Errorf("%w: dates are required", ErrInvalidInput)
	}

	for _, date := range req.Dates {
		if err := date.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid date %q: %v", ErrInvalidInput, date, err)
		}
	}

	uc.logger.Info("RemoveAvailability: removing %d dates", len(req.Dates))

	report := &Report{
		Removed: make([]types.DateString, 0, len(req.Dates)),
		Failed:  make([]FailedDate, 0),
	}

	for _, date := range req.Dates {
		if err := uc.availabilityRepo.Delete(ctx, date); err != nil {
			reason := reasonFor(err)
			uc.logger.Warn("RemoveAvailability: failed to remove %s: %v", date, err)
			report.Failed = append(report.Failed, FailedDate{Date: date, Reason: reason})
			continue
		}
		report.Removed = append(report.Removed, date)
	}

	uc.logger.Info("RemoveAvailability: removed %d, failed %d", len(report.Removed), len(report.Failed))
	return report, nil
}

// reasonFor превращает ошибку репозитория в краткую причину для отчета
func reasonFor(err error) string {
	if errors.Is(err, availabilityRepo.ErrDayNotFound) {
		return "not found"
	}
	return "storage error"
}
