package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		date, ok := ParseDate("25/12/2025")
		require.True(t, ok)
		assert.Equal(t, 2025, date.Year())
		assert.Equal(t, time.December, date.Month())
		assert.Equal(t, 25, date.Day())
	})

	t.Run("round trips through FormatDate", func(t *testing.T) {
		date, ok := ParseDate("01/02/2026")
		require.True(t, ok)
		assert.Equal(t, "01/02/2026", FormatDate(date))
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, bad := range []string{"2025-12-25", "25-12-2025", "32/01/2025", "25/13/2025", ""} {
			_, ok := ParseDate(bad)
			assert.False(t, ok, bad)
		}
	})
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("00:00:00"))
	assert.True(t, IsValidClockTime("23:59:59"))
	assert.True(t, IsValidClockTime("08:30:15"))

	assert.False(t, IsValidClockTime("24:00:00"))
	assert.False(t, IsValidClockTime("12:60:00"))
	assert.False(t, IsValidClockTime("12:00:60"))
	assert.False(t, IsValidClockTime("8:30:15"))
	assert.False(t, IsValidClockTime("08:30"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "year", Message: "must be between 2020 and 2100"},
	}

	assert.Contains(t, errs.Error(), "name: is required")
	assert.Equal(t, map[string]string{
		"name": "is required",
		"year": "must be between 2020 and 2100",
	}, errs.ToMap())
}

func TestBounds(t *testing.T) {
	assert.True(t, IsValidHour(0))
	assert.True(t, IsValidHour(23))
	assert.False(t, IsValidHour(24))
	assert.False(t, IsValidHour(-1))

	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))

	assert.True(t, IsValidYear(2024))
	assert.False(t, IsValidYear(2019))
	assert.False(t, IsValidYear(2101))
}
