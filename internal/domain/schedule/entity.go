package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// VacationCode marks schedule days covered by a vacation booking.
const VacationCode = "VACACIONES"

type Entry struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         time.Time
	ShiftCode    string
	Hours        decimal.Decimal
	Pay          decimal.Decimal
}

// MonthlyTotal caches the per-month sum of an employee's schedule rows.
// It must match the underlying rows after every mutation.
type MonthlyTotal struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Year         int
	Month        int
	Hours        decimal.Decimal
	Pay          decimal.Decimal
}

type YearMonth struct {
	Year  int
	Month int
}
