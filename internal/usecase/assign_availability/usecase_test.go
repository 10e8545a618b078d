package assign_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

type fakeAvailabilityRepo struct {
	existing []*domain.AvailableDay
	upserted []types.DateString

	listErr   error
	upsertErr error
}

func (f *fakeAvailabilityRepo) ListRange(_ context.Context, start, end types.DateString) ([]*domain.AvailableDay, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.AvailableDay, 0)
	for _, d := range f.existing {
		if !d.Date.IsBefore(start) && !d.Date.IsAfter(end) {
			result = append(result, d)
		}
	}
	return result, nil
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, date types.DateString, dayType domain.DayType) (*domain.AvailableDay, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserted = append(f.upserted, date)
	return &domain.AvailableDay{Date: date, Type: dayType}, nil
}

// fakeTxManager выполняет fn без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeAvailabilityRepo) *UseCase {
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-15",
		EndDate:   "2025-06-17",
		Type:      domain.TypeTeaTasting,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TypeTeaTasting, resp.Type)
	assert.Equal(t, []types.DateString{"2025-06-15", "2025-06-16", "2025-06-17"}, resp.Dates)
	assert.Equal(t, []types.DateString{"2025-06-15", "2025-06-16", "2025-06-17"}, repo.upserted)
}

func TestUseCase_Execute_SingleDayDefaultsEndDate(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-15",
		Type:      domain.TypeIntroGongfu,
	})

	require.NoError(t, err)
	assert.Equal(t, []types.DateString{"2025-06-15"}, resp.Dates)
}

func TestUseCase_Execute_SameTypeIsNotConflict(t *testing.T) {
	// Повторное назначение того же типа идемпотентно
	repo := &fakeAvailabilityRepo{existing: []*domain.AvailableDay{
		{Date: "2025-06-16", Type: domain.TypeTeaTasting},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-15",
		EndDate:   "2025-06-17",
		Type:      domain.TypeTeaTasting,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Dates, 3)
}

func TestUseCase_Execute_ConflictRejectsWholeRange(t *testing.T) {
	repo := &fakeAvailabilityRepo{existing: []*domain.AvailableDay{
		{Date: "2025-06-16", Type: domain.TypeIntroGongfu},
		{Date: "2025-06-17", Type: domain.TypeGuidedMeditation},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-15",
		EndDate:   "2025-06-18",
		Type:      domain.TypeTeaTasting,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// Все конфликтующие даты возвращаются вызывающей стороне
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, []types.DateString{"2025-06-16", "2025-06-17"}, conflictErr.Dates)

	// Ни одна дата диапазона не записана
	assert.Empty(t, repo.upserted)
}

func TestUseCase_Execute_PastDateRejectedBeforeConflictCheck(t *testing.T) {
	// Прошедшая дата отклоняется даже если диапазон конфликтует
	repo := &fakeAvailabilityRepo{
		existing: []*domain.AvailableDay{{Date: "2025-05-30", Type: domain.TypeIntroGongfu}},
		listErr:  errors.New("must not be called"),
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-05-29",
		EndDate:   "2025-05-31",
		Type:      domain.TypeTeaTasting,
	})

	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, repo.upserted)
}

func TestUseCase_Execute_TodayIsAllowed(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-01",
		Type:      domain.TypeTeaTasting,
	})

	require.NoError(t, err)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeAvailabilityRepo{})

	t.Run("MissingStartDate", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{Type: domain.TypeTeaTasting})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			StartDate: "2025-06-15",
			Type:      domain.DayType("yoga"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			StartDate: "2025-06-17",
			EndDate:   "2025-06-15",
			Type:      domain.TypeTeaTasting,
		})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestUseCase_Execute_UpsertFailureAborts(t *testing.T) {
	repo := &fakeAvailabilityRepo{upsertErr: errors.New("disk full")}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-15",
		Type:      domain.TypeTeaTasting,
	})

	assert.ErrorIs(t, err, ErrInternal)
}
