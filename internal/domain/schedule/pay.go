package schedule

import "github.com/shopspring/decimal"

// Pay computes the money owed for hours at rate, applying the holiday
// multiplier when the day is a registered holiday. Rounded to cents.
func Pay(rate, hours decimal.Decimal, holiday bool, multiplier decimal.Decimal) decimal.Decimal {
	pay := rate.Mul(hours)
	if holiday {
		pay = pay.Mul(multiplier)
	}
	return pay.Round(2)
}
