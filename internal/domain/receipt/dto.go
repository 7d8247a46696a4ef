package receipt

import (
	"github.com/retailops/turnos-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ReceiptQuery struct {
	EmployeeID string
	Year       int
	Month      int
}

func (q *ReceiptQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidYear(q.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2020 and 2100"})
	}
	if !validator.IsValidMonth(q.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaveReceiptRequest struct {
	EmployeeID  string           `json:"employee_id"`
	Year        int              `json:"year"`
	Month       int              `json:"month"`
	Consumption *decimal.Decimal `json:"consumption,omitempty"`
}

func (r *SaveReceiptRequest) Validate() error {
	q := ReceiptQuery{EmployeeID: r.EmployeeID, Year: r.Year, Month: r.Month}
	if err := q.Validate(); err != nil {
		return err
	}
	if r.Consumption != nil && r.Consumption.IsNegative() {
		return validator.ValidationErrors{{Field: "consumption", Message: "must be non-negative"}}
	}
	return nil
}

type ReceiptResponse struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	PlannedHours decimal.Decimal `json:"planned_hours"`
	PlannedPay   decimal.Decimal `json:"planned_pay"`
	WorkedHours  decimal.Decimal `json:"worked_hours"`
	WorkedPay    decimal.Decimal `json:"worked_pay"`
	Consumption  decimal.Decimal `json:"consumption"`
	Bonuses      decimal.Decimal `json:"bonuses"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetPay       decimal.Decimal `json:"net_pay"`
	Persisted    bool            `json:"persisted"`
}
