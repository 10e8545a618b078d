package appointments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/internal/infra/storage/appointment"
	"github.com/Cameron8325/teahouse-booking/internal/service/appointments/models"
	"github.com/Cameron8325/teahouse-booking/pkg/ptr"
)

// fakeAppointmentRepo хранит записи в памяти
type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	updateErr    error
}

func newFakeRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, a := range appts {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter appointment.Filter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if filter.UserID != nil && a.UserID != *filter.UserID {
			continue
		}
		if filter.Date != nil && a.Date != *filter.Date {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		copied := *a
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	appt, ok := f.appointments[id]
	if !ok {
		return appointment.ErrAppointmentNotFound
	}
	appt.Status = status
	if status != domain.StatusFlagged {
		appt.FlagReason = nil
	}
	return nil
}

func (f *fakeAppointmentRepo) Flag(_ context.Context, id int64, reason string) error {
	appt, ok := f.appointments[id]
	if !ok {
		return appointment.ErrAppointmentNotFound
	}
	appt.Status = domain.StatusFlagged
	appt.FlagReason = &reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		UserID:    7,
		Date:      "2025-06-15",
		Status:    status,
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	t.Run("Found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "2025-06-15", resp.Date)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_List(t *testing.T) {
	repo := newFakeRepo(
		testAppointment(1, domain.StatusPending),
		testAppointment(2, domain.StatusConfirmed),
	)
	svc := NewService(repo, nopLogger{})

	t.Run("All", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &models.ListRequest{})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 2)
	})

	t.Run("ByStatus", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &models.ListRequest{Status: ptr.Ptr("confirmed")})
		require.NoError(t, err)
		require.Len(t, resp.Appointments, 1)
		assert.Equal(t, int64(2), resp.Appointments[0].ID)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		_, err := svc.List(context.Background(), &models.ListRequest{Status: ptr.Ptr("cancelled")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Approve(t *testing.T) {
	t.Run("FromPending", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusPending))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Approve(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("FromFlaggedClearsReason", func(t *testing.T) {
		appt := testAppointment(1, domain.StatusFlagged)
		appt.FlagReason = ptr.Ptr("payment issue")
		repo := newFakeRepo(appt)
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Approve(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Nil(t, resp.FlagReason)
	})

	t.Run("RepeatedApproveIsNoop", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusConfirmed))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Approve(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("FromDeniedRejected", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusDenied))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Approve(context.Background(), 1)
		assert.ErrorIs(t, err, ErrIllegalTransition)
		// Состояние не изменилось
		assert.Equal(t, domain.StatusDenied, repo.appointments[1].Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})
		_, err := svc.Approve(context.Background(), 99)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_Deny(t *testing.T) {
	t.Run("FromPending", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusPending))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Deny(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "denied", resp.Status)
	})

	t.Run("FromConfirmedRejected", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusConfirmed))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Deny(context.Background(), 1)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})
}

func TestService_MarkToCompletion(t *testing.T) {
	t.Run("FromConfirmed", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusConfirmed))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.MarkToCompletion(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "to_completion", resp.Status)
	})

	t.Run("FromPendingRejected", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusPending))
		svc := NewService(repo, nopLogger{})

		_, err := svc.MarkToCompletion(context.Background(), 1)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})
}

func TestService_Flag(t *testing.T) {
	t.Run("WithReason", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusConfirmed))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Flag(context.Background(), 1, "guest requested reschedule")
		require.NoError(t, err)
		assert.Equal(t, "flagged", resp.Status)
		require.NotNil(t, resp.FlagReason)
		assert.Equal(t, "guest requested reschedule", *resp.FlagReason)
	})

	t.Run("EmptyReasonRejected", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusConfirmed))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Flag(context.Background(), 1, "")
		assert.ErrorIs(t, err, ErrEmptyReason)
		// Запись не изменилась
		assert.Equal(t, domain.StatusConfirmed, repo.appointments[1].Status)
	})

	t.Run("BlankReasonRejected", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusConfirmed))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Flag(context.Background(), 1, "   \t ")
		assert.ErrorIs(t, err, ErrEmptyReason)
	})

	t.Run("ReasonTooLong", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusConfirmed))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Flag(context.Background(), 1, strings.Repeat("x", domain.MaxFlagReasonLength+1))
		assert.ErrorIs(t, err, ErrReasonTooLong)
	})

	t.Run("FromToCompletion", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusToCompletion))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Flag(context.Background(), 1, "payment dispute")
		require.NoError(t, err)
		assert.Equal(t, "flagged", resp.Status)
	})

	t.Run("FromDeniedRejected", func(t *testing.T) {
		repo := newFakeRepo(testAppointment(1, domain.StatusDenied))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Flag(context.Background(), 1, "late notice")
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})
		_, err := svc.Flag(context.Background(), 99, "reason")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_StorageError(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusPending))
	repo.updateErr = errors.New("connection reset")
	svc := NewService(repo, nopLogger{})

	_, err := svc.Approve(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}
