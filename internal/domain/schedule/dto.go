package schedule

import (
	"github.com/retailops/turnos-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AssignShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // DD/MM/YYYY
	ShiftName  string `json:"shift"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.ParseDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a DD/MM/YYYY date"})
	}
	if validator.IsEmpty(r.ShiftName) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Date         string          `json:"date"`
	ShiftCode    string          `json:"shift"`
	Hours        decimal.Decimal `json:"hours"`
	Pay          decimal.Decimal `json:"pay"`
}

type MonthlyTotalResponse struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Hours        decimal.Decimal `json:"hours"`
	Pay          decimal.Decimal `json:"pay"`
}

type GridFilter struct {
	Year       int
	Month      int
	EmployeeID *string
}
