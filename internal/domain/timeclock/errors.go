package timeclock

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("shift already open, EGRESO expected next")
	ErrNotClockedIn     = errors.New("no open shift, INGRESO expected next")
	ErrEventNotFound    = errors.New("clock event not found")
	ErrNoMatchingPair   = errors.New("no adjacent event completes a clock pair")
)
