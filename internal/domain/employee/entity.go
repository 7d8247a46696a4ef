package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                       string
	FirstName                string
	LastName                 string
	Email                    string
	HireDate                 time.Time
	HourlyRate               decimal.Decimal
	VacationDaysRemaining    int
	VacationHoursEntitlement int
	PhotoURL                 *string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// FullName is the denormalized display name carried on reporting rows.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
