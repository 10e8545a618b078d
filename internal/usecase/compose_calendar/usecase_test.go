package compose_calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/internal/infra/storage/appointment"
	"github.com/Cameron8325/teahouse-booking/internal/infra/storage/settings"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

type fakeAvailabilityRepo struct {
	days []*domain.AvailableDay
}

func (f *fakeAvailabilityRepo) List(_ context.Context) ([]*domain.AvailableDay, error) {
	return f.days, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) List(_ context.Context, _ appointment.Filter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeSettingsRepo struct {
	overrides []*settings.CapacityOverride
}

func (f *fakeSettingsRepo) ListAll(_ context.Context) ([]*settings.CapacityOverride, error) {
	return f.overrides, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(date string, dayType domain.DayType) *domain.AvailableDay {
	return &domain.AvailableDay{Date: types.DateString(date), Type: dayType}
}

func appt(date string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{Date: types.DateString(date), Status: status}
}

func newTestUseCase(days []*domain.AvailableDay, appts []*domain.Appointment, overrides []*settings.CapacityOverride) *UseCase {
	return NewUseCase(
		&fakeAvailabilityRepo{days: days},
		&fakeAppointmentRepo{appointments: appts},
		&fakeSettingsRepo{overrides: overrides},
		domain.DefaultDayCapacity,
		nopLogger{},
	)
}

func TestUseCase_Execute_PairPerDay(t *testing.T) {
	uc := newTestUseCase([]*domain.AvailableDay{
		day("2025-06-15", domain.TypeTeaTasting),
	}, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{TypeFilter: "all"})
	require.NoError(t, err)
	require.Len(t, resp.Events, 2)

	dayTypeEvent := resp.Events[0]
	assert.True(t, dayTypeEvent.IsDayType())
	assert.Equal(t, "Tea Tasting", dayTypeEvent.Title)
	assert.Equal(t, "green", dayTypeEvent.ColorKey)
	require.NotNil(t, dayTypeEvent.DayType)
	assert.Equal(t, domain.TypeTeaTasting, *dayTypeEvent.DayType)

	capacityEvent := resp.Events[1]
	assert.True(t, capacityEvent.IsCapacity())
	assert.Equal(t, "4 spots left", capacityEvent.Title)
	assert.Equal(t, "gray", capacityEvent.ColorKey)
	assert.Nil(t, capacityEvent.DayType)
}

func TestUseCase_Execute_CapacityTitles(t *testing.T) {
	tests := []struct {
		name         string
		appointments int
		title        string
		color        string
	}{
		{"NoneBooked", 0, "4 spots left", "gray"},
		{"ThreeBooked", 3, "1 spot left", "gray"},
		{"FullyBooked", 4, "Fully Booked", "red"},
		{"Overbooked", 6, "Fully Booked", "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appts := make([]*domain.Appointment, tt.appointments)
			for i := range appts {
				appts[i] = appt("2025-06-15", domain.StatusPending)
			}

			uc := newTestUseCase([]*domain.AvailableDay{
				day("2025-06-15", domain.TypeTeaTasting),
			}, appts, nil)

			resp, err := uc.Execute(context.Background(), &Request{TypeFilter: "all"})
			require.NoError(t, err)
			require.Len(t, resp.Events, 2)
			assert.Equal(t, tt.title, resp.Events[1].Title)
			assert.Equal(t, tt.color, resp.Events[1].ColorKey)
		})
	}
}

func TestUseCase_Execute_AllStatusesOccupySlots(t *testing.T) {
	// Слот занимает сам факт существования записи, статус не важен
	uc := newTestUseCase([]*domain.AvailableDay{
		day("2025-06-15", domain.TypeTeaTasting),
	}, []*domain.Appointment{
		appt("2025-06-15", domain.StatusPending),
		appt("2025-06-15", domain.StatusDenied),
		appt("2025-06-15", domain.StatusFlagged),
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{TypeFilter: "all"})
	require.NoError(t, err)
	assert.Equal(t, "1 spot left", resp.Events[1].Title)
}

func TestUseCase_Execute_CapacityOverride(t *testing.T) {
	uc := newTestUseCase([]*domain.AvailableDay{
		day("2025-06-15", domain.TypeTeaTasting),
	}, []*domain.Appointment{
		appt("2025-06-15", domain.StatusConfirmed),
	}, []*settings.CapacityOverride{
		{Date: "2025-06-15", Capacity: 2},
	})

	resp, err := uc.Execute(context.Background(), &Request{TypeFilter: "all"})
	require.NoError(t, err)
	assert.Equal(t, "1 spot left", resp.Events[1].Title)
}

func TestUseCase_Execute_DeterministicOrder(t *testing.T) {
	// Даты по возрастанию, для одной даты тип дня раньше вместимости
	uc := newTestUseCase([]*domain.AvailableDay{
		day("2025-06-16", domain.TypeIntroGongfu),
		day("2025-06-15", domain.TypeTeaTasting),
	}, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{TypeFilter: "all"})
	require.NoError(t, err)
	require.Len(t, resp.Events, 4)

	assert.Equal(t, types.DateString("2025-06-15"), resp.Events[0].Start)
	assert.True(t, resp.Events[0].IsDayType())
	assert.Equal(t, types.DateString("2025-06-15"), resp.Events[1].Start)
	assert.True(t, resp.Events[1].IsCapacity())
	assert.Equal(t, types.DateString("2025-06-16"), resp.Events[2].Start)
	assert.True(t, resp.Events[2].IsDayType())
	assert.Equal(t, types.DateString("2025-06-16"), resp.Events[3].Start)
	assert.True(t, resp.Events[3].IsCapacity())
}

func TestUseCase_Execute_FilterKeepsPairsWhole(t *testing.T) {
	// Пара событий одной даты проходит фильтр только целиком
	uc := newTestUseCase([]*domain.AvailableDay{
		day("2025-06-15", domain.TypeTeaTasting),
		day("2025-06-16", domain.TypeIntroGongfu),
	}, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{TypeFilter: "tea_tasting"})
	require.NoError(t, err)
	require.Len(t, resp.Events, 2)

	assert.Equal(t, types.DateString("2025-06-15"), resp.Events[0].Start)
	assert.True(t, resp.Events[0].IsDayType())
	assert.Equal(t, types.DateString("2025-06-15"), resp.Events[1].Start)
	assert.True(t, resp.Events[1].IsCapacity())
}

func TestUseCase_Execute_EmptyFilterDefaultsToAll(t *testing.T) {
	uc := newTestUseCase([]*domain.AvailableDay{
		day("2025-06-15", domain.TypeTeaTasting),
	}, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Len(t, resp.Events, 2)
}

func TestUseCase_Execute_UnknownFilterRejected(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{TypeFilter: "yoga"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_NoAvailability(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{TypeFilter: "all"})
	require.NoError(t, err)
	assert.Empty(t, resp.Events)
}
