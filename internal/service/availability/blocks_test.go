package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

func day(date string, dayType domain.DayType) *domain.AvailableDay {
	return &domain.AvailableDay{
		Date: types.DateString(date),
		Type: dayType,
	}
}

func TestGroupBlocks_Empty(t *testing.T) {
	blocks := groupBlocks(nil)
	assert.Empty(t, blocks)

	blocks = groupBlocks([]*domain.AvailableDay{})
	assert.Empty(t, blocks)
}

func TestGroupBlocks_SingleDay(t *testing.T) {
	blocks := groupBlocks([]*domain.AvailableDay{
		day("2025-06-15", domain.TypeTeaTasting),
	})

	require.Len(t, blocks, 1)
	assert.Equal(t, types.DateString("2025-06-15"), blocks[0].StartDate)
	assert.Equal(t, types.DateString("2025-06-15"), blocks[0].EndDate)
	assert.Equal(t, domain.TypeTeaTasting, blocks[0].Type)
	assert.Equal(t, 1, blocks[0].Days)
	assert.True(t, blocks[0].IsSingleDay())
}

func TestGroupBlocks_ConsecutiveSameType(t *testing.T) {
	blocks := groupBlocks([]*domain.AvailableDay{
		day("2025-06-15", domain.TypeTeaTasting),
		day("2025-06-16", domain.TypeTeaTasting),
		day("2025-06-17", domain.TypeTeaTasting),
	})

	require.Len(t, blocks, 1)
	assert.Equal(t, types.DateString("2025-06-15"), blocks[0].StartDate)
	assert.Equal(t, types.DateString("2025-06-17"), blocks[0].EndDate)
	assert.Equal(t, 3, blocks[0].Days)
}

func TestGroupBlocks_GapBreaksBlock(t *testing.T) {
	blocks := groupBlocks([]*domain.AvailableDay{
		day("2025-06-15", domain.TypeTeaTasting),
		day("2025-06-16", domain.TypeTeaTasting),
		// 17-е пропущено
		day("2025-06-18", domain.TypeTeaTasting),
	})

	require.Len(t, blocks, 2)
	assert.Equal(t, types.DateString("2025-06-16"), blocks[0].EndDate)
	assert.Equal(t, 2, blocks[0].Days)
	assert.Equal(t, types.DateString("2025-06-18"), blocks[1].StartDate)
	assert.Equal(t, 1, blocks[1].Days)
}

func TestGroupBlocks_TypeChangeBreaksBlock(t *testing.T) {
	// Смена типа без разрыва дат начинает новый блок
	blocks := groupBlocks([]*domain.AvailableDay{
		day("2025-06-15", domain.TypeTeaTasting),
		day("2025-06-16", domain.TypeIntroGongfu),
		day("2025-06-17", domain.TypeIntroGongfu),
	})

	require.Len(t, blocks, 2)
	assert.Equal(t, domain.TypeTeaTasting, blocks[0].Type)
	assert.Equal(t, 1, blocks[0].Days)
	assert.Equal(t, domain.TypeIntroGongfu, blocks[1].Type)
	assert.Equal(t, types.DateString("2025-06-16"), blocks[1].StartDate)
	assert.Equal(t, types.DateString("2025-06-17"), blocks[1].EndDate)
	assert.Equal(t, 2, blocks[1].Days)
}

func TestGroupBlocks_MonthBoundary(t *testing.T) {
	blocks := groupBlocks([]*domain.AvailableDay{
		day("2025-06-30", domain.TypeGuidedMeditation),
		day("2025-07-01", domain.TypeGuidedMeditation),
	})

	require.Len(t, blocks, 1)
	assert.Equal(t, types.DateString("2025-06-30"), blocks[0].StartDate)
	assert.Equal(t, types.DateString("2025-07-01"), blocks[0].EndDate)
	assert.Equal(t, 2, blocks[0].Days)
}

func TestGroupBlocks_Deterministic(t *testing.T) {
	days := []*domain.AvailableDay{
		day("2025-06-15", domain.TypeTeaTasting),
		day("2025-06-16", domain.TypeTeaTasting),
		day("2025-06-18", domain.TypeIntroGongfu),
	}

	first := groupBlocks(days)
	second := groupBlocks(days)
	assert.Equal(t, first, second)
}
