package vacation

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	// TypePaid consumes vacation balance and books paid days.
	TypePaid Type = "vacaciones"
	// TypeUnpaid books zero-pay days and leaves the balance untouched.
	TypeUnpaid Type = "vacaciones sin goce"
)

type Booking struct {
	ID         string
	EmployeeID string
	Days       int
	StartDate  time.Time
	EndDate    time.Time
	Type       Type
	CreatedAt  time.Time
}

// PerDayHours is the daily vacation credit: the weekly entitlement spread
// over the configured working week.
func PerDayHours(entitlementHours, weekDivisor int) decimal.Decimal {
	return decimal.NewFromInt(int64(entitlementHours)).
		Div(decimal.NewFromInt(int64(weekDivisor))).
		Round(2)
}
