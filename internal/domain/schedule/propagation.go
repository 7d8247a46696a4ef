package schedule

import (
	"fmt"
	"time"
)

// RatePolicy selects which schedule rows a rate change recomputes.
type RatePolicy string

const (
	// PolicyRetroactiveMonth recomputes the whole current month.
	PolicyRetroactiveMonth RatePolicy = "retroactivo_mes"
	// PolicyFromToday recomputes today through the end of the year.
	PolicyFromToday RatePolicy = "desde_hoy"
	// PolicyNextMonth recomputes from the 1st of next month through the
	// end of that month's year. In December this rolls into next year.
	PolicyNextMonth RatePolicy = "proximo_mes"
)

func (p RatePolicy) Valid() bool {
	switch p {
	case PolicyRetroactiveMonth, PolicyFromToday, PolicyNextMonth:
		return true
	}
	return false
}

// ResolveWindow turns a policy into the inclusive [from, to] date range
// the propagator recomputes, anchored at now.
func ResolveWindow(policy RatePolicy, now time.Time) (from, to time.Time, err error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch policy {
	case PolicyRetroactiveMonth:
		from = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, -1)
	case PolicyFromToday:
		from = day
		to = time.Date(day.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
	case PolicyNextMonth:
		from = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		to = time.Date(from.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown rate policy %q", policy)
	}

	return from, to, nil
}

// MonthsBetween lists every (year, month) touched by the inclusive range.
func MonthsBetween(from, to time.Time) []YearMonth {
	var months []YearMonth
	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		months = append(months, YearMonth{Year: cursor.Year(), Month: int(cursor.Month())})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return months
}
