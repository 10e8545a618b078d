package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	settingsRepo "github.com/Cameron8325/teahouse-booking/internal/infra/storage/settings"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

type fakeSettingsRepo struct {
	overrides map[types.DateString]*settingsRepo.CapacityOverride
}

func newFakeRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{overrides: make(map[types.DateString]*settingsRepo.CapacityOverride)}
}

func (f *fakeSettingsRepo) GetByDate(_ context.Context, date types.DateString) (*settingsRepo.CapacityOverride, error) {
	ov, ok := f.overrides[date]
	if !ok {
		return nil, settingsRepo.ErrOverrideNotFound
	}
	return ov, nil
}

func (f *fakeSettingsRepo) ListAll(_ context.Context) ([]*settingsRepo.CapacityOverride, error) {
	result := make([]*settingsRepo.CapacityOverride, 0, len(f.overrides))
	for _, ov := range f.overrides {
		result = append(result, ov)
	}
	return result, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, date types.DateString, capacity int) (*settingsRepo.CapacityOverride, error) {
	ov := &settingsRepo.CapacityOverride{
		ID:        int64(len(f.overrides) + 1),
		Date:      date,
		Capacity:  capacity,
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	f.overrides[date] = ov
	return ov, nil
}

func (f *fakeSettingsRepo) Delete(_ context.Context, date types.DateString) error {
	if _, ok := f.overrides[date]; !ok {
		return settingsRepo.ErrOverrideNotFound
	}
	delete(f.overrides, date)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_SetDayCapacity(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, nopLogger{})

		resp, err := svc.SetDayCapacity(context.Background(), "2025-06-15", 6)
		require.NoError(t, err)
		assert.Equal(t, "2025-06-15", resp.Date)
		assert.Equal(t, 6, resp.Capacity)
	})

	t.Run("UpsertOverwrites", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, nopLogger{})

		_, err := svc.SetDayCapacity(context.Background(), "2025-06-15", 6)
		require.NoError(t, err)

		resp, err := svc.SetDayCapacity(context.Background(), "2025-06-15", 2)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Capacity)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})

		_, err := svc.SetDayCapacity(context.Background(), "2025-06-15", 0)
		assert.ErrorIs(t, err, ErrInvalidCapacity)

		_, err = svc.SetDayCapacity(context.Background(), "2025-06-15", 21)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})

		_, err := svc.SetDayCapacity(context.Background(), "garbage", 4)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_RemoveDayCapacity(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.SetDayCapacity(context.Background(), "2025-06-15", 6)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveDayCapacity(context.Background(), "2025-06-15"))

	err = svc.RemoveDayCapacity(context.Background(), "2025-06-15")
	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestService_ListOverrides(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListOverrides(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Overrides)

	_, err = svc.SetDayCapacity(context.Background(), "2025-06-15", 6)
	require.NoError(t, err)

	resp, err = svc.ListOverrides(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Overrides, 1)
}
