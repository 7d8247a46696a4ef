package shift

import "time"

type Definition struct {
	ID            string
	Name          string
	StartHour     int
	EndHour       int
	DurationHours int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Duration computes shift length in hours. Overnight shifts wrap past
// midnight, so a negative difference gains 24.
func Duration(startHour, endHour int) int {
	d := endHour - startHour
	if d < 0 {
		d += 24
	}
	return d
}
