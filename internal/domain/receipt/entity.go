package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

type Receipt struct {
	ID           string
	EmployeeID   string
	Year         int
	Month        int
	PlannedHours decimal.Decimal
	PlannedPay   decimal.Decimal
	WorkedHours  decimal.Decimal
	WorkedPay    decimal.Decimal
	Consumption  decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Net computes take-home pay: worked pay minus the discounted staff
// consumption, plus bonuses, minus deductions.
func Net(workedPay, consumption, discount, bonuses, deductions decimal.Decimal) decimal.Decimal {
	return workedPay.
		Sub(consumption.Mul(discount)).
		Add(bonuses).
		Sub(deductions).
		Round(2)
}
