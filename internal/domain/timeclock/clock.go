package timeclock

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MinutesOfDay converts an HH:MM:SS string to minutes since midnight.
// Seconds are discarded.
func MinutesOfDay(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock time %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", clock)
	}
	if s, err := strconv.Atoi(parts[2]); err != nil || s < 0 || s > 59 {
		return 0, fmt.Errorf("invalid second in clock time %q", clock)
	}
	return h*60 + m, nil
}

// WorkedMinutes is the span between clock-in and clock-out. A clock-out
// earlier in the day than the clock-in means the shift crossed midnight.
func WorkedMinutes(clockIn, clockOut string) (int, error) {
	in, err := MinutesOfDay(clockIn)
	if err != nil {
		return 0, err
	}
	out, err := MinutesOfDay(clockOut)
	if err != nil {
		return 0, err
	}
	minutes := out - in
	if minutes < 0 {
		minutes += 24 * 60
	}
	return minutes, nil
}

// WorkedHours converts worked minutes to hours rounded to 2 decimals.
func WorkedHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).Round(2)
}

// NextAction derives the state machine's expected action from the most
// recent event, if any. A fresh year starts awaiting INGRESO.
func NextAction(last *Event) Action {
	if last == nil || last.Action == ActionOut {
		return ActionIn
	}
	return ActionOut
}
