package timeclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesOfDay(t *testing.T) {
	t.Run("parses and drops seconds", func(t *testing.T) {
		minutes, err := MinutesOfDay("08:30:45")
		require.NoError(t, err)
		assert.Equal(t, 8*60+30, minutes)
	})

	t.Run("midnight", func(t *testing.T) {
		minutes, err := MinutesOfDay("00:00:00")
		require.NoError(t, err)
		assert.Equal(t, 0, minutes)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, bad := range []string{"8:30", "24:00:00", "10:60:00", "10:00:61", "garbage"} {
			_, err := MinutesOfDay(bad)
			assert.Error(t, err, bad)
		}
	})
}

func TestWorkedMinutes(t *testing.T) {
	t.Run("regular eight hour day", func(t *testing.T) {
		minutes, err := WorkedMinutes("08:00:00", "16:00:00")
		require.NoError(t, err)
		assert.Equal(t, 480, minutes)
	})

	t.Run("shift crossing midnight", func(t *testing.T) {
		minutes, err := WorkedMinutes("22:00:00", "02:00:00")
		require.NoError(t, err)
		assert.Equal(t, 240, minutes)
	})

	t.Run("short span", func(t *testing.T) {
		minutes, err := WorkedMinutes("09:15:00", "09:45:00")
		require.NoError(t, err)
		assert.Equal(t, 30, minutes)
	})
}

func TestWorkedHours(t *testing.T) {
	assert.Equal(t, "8", WorkedHours(480).String())
	assert.Equal(t, "4", WorkedHours(240).String())
	assert.Equal(t, "7.5", WorkedHours(450).String())
	// 100 minutes is 1.666..., rounded to 2 decimals
	assert.Equal(t, "1.67", WorkedHours(100).String())
}

func TestNextAction(t *testing.T) {
	t.Run("fresh year expects INGRESO", func(t *testing.T) {
		assert.Equal(t, ActionIn, NextAction(nil))
	})

	t.Run("after INGRESO expects EGRESO", func(t *testing.T) {
		assert.Equal(t, ActionOut, NextAction(&Event{Action: ActionIn}))
	})

	t.Run("after EGRESO expects INGRESO", func(t *testing.T) {
		assert.Equal(t, ActionIn, NextAction(&Event{Action: ActionOut}))
	})
}

func TestPunchRequest_Validate(t *testing.T) {
	valid := PunchRequest{
		EmployeeID: "emp-1",
		Action:     "INGRESO",
		Date:       "15/03/2025",
		Time:       "08:00:00",
	}
	assert.NoError(t, valid.Validate())

	badAction := valid
	badAction.Action = "ENTRADA"
	assert.Error(t, badAction.Validate())

	badTime := valid
	badTime.Time = "8:00"
	assert.Error(t, badTime.Validate())

	badDate := valid
	badDate.Date = "2025-03-15"
	assert.Error(t, badDate.Validate())
}
