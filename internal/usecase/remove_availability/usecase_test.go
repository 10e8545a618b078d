package remove_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	availabilityRepo "github.com/Cameron8325/teahouse-booking/internal/infra/storage/availability"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// fakeAvailabilityRepo возвращает ошибку для дат из failWith
type fakeAvailabilityRepo struct {
	failWith map[types.DateString]error
	deleted  []types.DateString
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, date types.DateString) error {
	if err, ok := f.failWith[date]; ok {
		return err
	}
	f.deleted = append(f.deleted, date)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute_AllRemoved(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	uc := NewUseCase(repo, nopLogger{})

	report, err := uc.Execute(context.Background(), &Request{
		Dates: []types.DateString{"2025-06-15", "2025-06-16"},
	})

	require.NoError(t, err)
	assert.True(t, report.AllSucceeded())
	assert.Equal(t, []types.DateString{"2025-06-15", "2025-06-16"}, report.Removed)
	assert.Empty(t, report.Failed)
}

func TestUseCase_Execute_PartialFailure(t *testing.T) {
	// Ошибка одной даты не блокирует удаление остальных
	repo := &fakeAvailabilityRepo{failWith: map[types.DateString]error{
		"2025-06-16": availabilityRepo.ErrDayNotFound,
	}}
	uc := NewUseCase(repo, nopLogger{})

	report, err := uc.Execute(context.Background(), &Request{
		Dates: []types.DateString{"2025-06-15", "2025-06-16", "2025-06-17"},
	})

	require.NoError(t, err)
	assert.False(t, report.AllSucceeded())
	assert.Equal(t, []types.DateString{"2025-06-15", "2025-06-17"}, report.Removed)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, types.DateString("2025-06-16"), report.Failed[0].Date)
	assert.Equal(t, "not found", report.Failed[0].Reason)
}

func TestUseCase_Execute_StorageErrorReason(t *testing.T) {
	repo := &fakeAvailabilityRepo{failWith: map[types.DateString]error{
		"2025-06-15": errors.New("connection reset"),
	}}
	uc := NewUseCase(repo, nopLogger{})

	report, err := uc.Execute(context.Background(), &Request{
		Dates: []types.DateString{"2025-06-15"},
	})

	require.NoError(t, err)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "storage error", report.Failed[0].Reason)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{}, nopLogger{})

	t.Run("EmptyDates", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("MalformedDate", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			Dates: []types.DateString{"2025-06-15", "garbage"},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
