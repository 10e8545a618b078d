package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateString(t *testing.T) {
	ts := time.Date(2025, 6, 15, 18, 30, 45, 0, time.UTC)
	assert.Equal(t, DateString("2025-06-15"), NewDateString(ts))
}

func TestNewDateStringFromString(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := NewDateStringFromString("2025-06-15")
		require.NoError(t, err)
		assert.Equal(t, DateString("2025-06-15"), d)
	})

	t.Run("Invalid", func(t *testing.T) {
		cases := []string{"15-06-2025", "2025/06/15", "2025-13-01", "not-a-date", ""}
		for _, c := range cases {
			_, err := NewDateStringFromString(c)
			assert.ErrorIs(t, err, ErrInvalidDateFormat, "input %q", c)
		}
	})
}

func TestDateString_Compare(t *testing.T) {
	a := DateString("2025-06-15")
	b := DateString("2025-06-16")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2025-06-30")

	next, err := d.AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-07-01"), next)

	prev, err := d.AddDays(-30)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-05-31"), prev)
}

func TestDateString_IsNextDayOf(t *testing.T) {
	assert.True(t, DateString("2025-07-01").IsNextDayOf("2025-06-30"))
	assert.False(t, DateString("2025-07-02").IsNextDayOf("2025-06-30"))
	assert.False(t, DateString("2025-06-30").IsNextDayOf("2025-06-30"))
	// Некорректная опорная дата - не следующая ни для чего
	assert.False(t, DateString("2025-07-01").IsNextDayOf("garbage"))
}

func TestDateString_DaysUntil(t *testing.T) {
	from := DateString("2025-06-15")

	days, err := from.DaysUntil("2025-06-18")
	require.NoError(t, err)
	assert.Equal(t, 3, days)

	days, err = from.DaysUntil("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, -5, days)
}

func TestDatesInRange(t *testing.T) {
	t.Run("MultiDay", func(t *testing.T) {
		dates, err := DatesInRange("2025-06-29", "2025-07-02")
		require.NoError(t, err)
		assert.Equal(t, []DateString{"2025-06-29", "2025-06-30", "2025-07-01", "2025-07-02"}, dates)
	})

	t.Run("SingleDay", func(t *testing.T) {
		dates, err := DatesInRange("2025-06-15", "2025-06-15")
		require.NoError(t, err)
		assert.Equal(t, []DateString{"2025-06-15"}, dates)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		dates, err := DatesInRange("2025-06-16", "2025-06-15")
		require.NoError(t, err)
		assert.Empty(t, dates)
	})

	t.Run("InvalidBound", func(t *testing.T) {
		_, err := DatesInRange("garbage", "2025-06-15")
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})
}
