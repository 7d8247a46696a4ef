package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveWindow_RetroactiveMonth(t *testing.T) {
	from, to, err := ResolveWindow(PolicyRetroactiveMonth, date(2025, time.March, 17))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.March, 1), from)
	assert.Equal(t, date(2025, time.March, 31), to)
}

func TestResolveWindow_FromToday(t *testing.T) {
	from, to, err := ResolveWindow(PolicyFromToday, date(2025, time.March, 17))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.March, 17), from)
	assert.Equal(t, date(2025, time.December, 31), to)
}

func TestResolveWindow_NextMonth(t *testing.T) {
	from, to, err := ResolveWindow(PolicyNextMonth, date(2025, time.March, 17))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.April, 1), from)
	assert.Equal(t, date(2025, time.December, 31), to)
}

func TestResolveWindow_NextMonthDecemberRollsIntoNextYear(t *testing.T) {
	from, to, err := ResolveWindow(PolicyNextMonth, date(2025, time.December, 10))
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.January, 1), from)
	assert.Equal(t, date(2026, time.December, 31), to)
}

func TestResolveWindow_UnknownPolicy(t *testing.T) {
	_, _, err := ResolveWindow(RatePolicy("cuando_sea"), date(2025, time.March, 17))
	assert.Error(t, err)
}

func TestMonthsBetween(t *testing.T) {
	t.Run("single month", func(t *testing.T) {
		months := MonthsBetween(date(2025, time.March, 1), date(2025, time.March, 31))
		assert.Equal(t, []YearMonth{{Year: 2025, Month: 3}}, months)
	})

	t.Run("rest of year", func(t *testing.T) {
		months := MonthsBetween(date(2025, time.October, 15), date(2025, time.December, 31))
		assert.Equal(t, []YearMonth{
			{Year: 2025, Month: 10},
			{Year: 2025, Month: 11},
			{Year: 2025, Month: 12},
		}, months)
	})

	t.Run("year boundary", func(t *testing.T) {
		months := MonthsBetween(date(2025, time.December, 1), date(2026, time.February, 28))
		assert.Equal(t, []YearMonth{
			{Year: 2025, Month: 12},
			{Year: 2026, Month: 1},
			{Year: 2026, Month: 2},
		}, months)
	})
}

func TestRatePolicy_Valid(t *testing.T) {
	assert.True(t, PolicyRetroactiveMonth.Valid())
	assert.True(t, PolicyFromToday.Valid())
	assert.True(t, PolicyNextMonth.Valid())
	assert.False(t, RatePolicy("otro").Valid())
}
