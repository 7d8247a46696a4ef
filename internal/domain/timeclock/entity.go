package timeclock

import (
	"time"

	"github.com/shopspring/decimal"
)

type Action string

const (
	ActionIn  Action = "INGRESO"
	ActionOut Action = "EGRESO"
)

type Event struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Action     Action
	Time       string // HH:MM:SS
	CreatedAt  time.Time
}

// TimesheetEntry is the derived worked-time row for one employee-day,
// built from a completed INGRESO/EGRESO pair.
type TimesheetEntry struct {
	ID            string
	EmployeeID    string
	EmployeeName  string
	Date          time.Time
	ClockIn       string
	ClockOut      string
	WorkedMinutes int
	Pay           decimal.Decimal
}
