package extras

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind int

const (
	KindBonus     Kind = 1
	KindDeduction Kind = 2
)

type Payment struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Year         int
	Month        int
	Category     string
	Amount       decimal.Decimal
	Detail       string
	Kind         Kind
	CreatedAt    time.Time
}
