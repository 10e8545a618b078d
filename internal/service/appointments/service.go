package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/internal/infra/storage/appointment"
	"github.com/Cameron8325/teahouse-booking/internal/service/appointments/models"
)

// Service сервис управления статусами записей
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID возвращает запись по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainAppointment(appt), nil
}

// List возвращает записи по фильтру, отсортированные по дате
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	filter := appointment.Filter{
		UserID: req.UserID,
		Date:   req.Date,
	}
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: List - %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	appts, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// Approve переводит запись в статус confirmed
func (s *Service) Approve(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	return s.setStatus(ctx, "Approve", id, domain.StatusConfirmed)
}

// Deny переводит запись в статус denied
func (s *Service) Deny(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	return s.setStatus(ctx, "Deny", id, domain.StatusDenied)
}

// MarkToCompletion переводит запись в статус to_completion
func (s *Service) MarkToCompletion(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	return s.setStatus(ctx, "MarkToCompletion", id, domain.StatusToCompletion)
}

// Flag помечает запись флагом с обязательной причиной
// При пустой или слишком длинной причине запись не меняется
func (s *Service) Flag(ctx context.Context, id int64, reason string) (*models.AppointmentResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: Flag - appointment %d", ErrEmptyReason, id)
	}
	if len(reason) > domain.MaxFlagReasonLength {
		return nil, fmt.Errorf("%w: Flag - appointment %d, length %d", ErrReasonTooLong, id, len(reason))
	}

	appt, err := s.getAppointment(ctx, "Flag", id)
	if err != nil {
		return nil, err
	}

	if !appt.Status.CanTransitionTo(domain.StatusFlagged) {
		s.logger.Warn("Flag: illegal transition %s -> %s for appointment %d", appt.Status, domain.StatusFlagged, id)
		return nil, fmt.Errorf("%w: Flag - cannot flag appointment %d in status %s", ErrIllegalTransition, id, appt.Status)
	}

	if err := s.appointmentRepo.Flag(ctx, id, reason); err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return nil, fmt.Errorf("%w: Flag - appointment %d", ErrAppointmentNotFound, id)
		}
		s.logger.Error("Flag: repository error: %v", err)
		return nil, fmt.Errorf("%w: Flag - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Flag: appointment %d flagged", id)
	return s.GetByID(ctx, id)
}

// setStatus переводит запись в целевой статус с проверкой допустимости перехода
// Повторный перевод в текущий статус - безвредный no-op
func (s *Service) setStatus(ctx context.Context, method string, id int64, target domain.AppointmentStatus) (*models.AppointmentResponse, error) {
	appt, err := s.getAppointment(ctx, method, id)
	if err != nil {
		return nil, err
	}

	if appt.Status == target {
		s.logger.Info("%s: appointment %d already in status %s", method, id, target)
		return models.FromDomainAppointment(appt), nil
	}

	if !appt.Status.CanTransitionTo(target) {
		s.logger.Warn("%s: illegal transition %s -> %s for appointment %d", method, appt.Status, target, id)
		return nil, fmt.Errorf("%w: %s - transition %s -> %s is not allowed", ErrIllegalTransition, method, appt.Status, target)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return nil, fmt.Errorf("%w: %s - appointment %d", ErrAppointmentNotFound, method, id)
		}
		s.logger.Error("%s: repository error: %v", method, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	s.logger.Info("%s: appointment %d moved %s -> %s", method, id, appt.Status, target)
	return s.GetByID(ctx, id)
}

func (s *Service) getAppointment(ctx context.Context, method string, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return nil, fmt.Errorf("%w: %s - appointment %d", ErrAppointmentNotFound, method, id)
		}
		s.logger.Error("%s: repository error: %v", method, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return appt, nil
}
