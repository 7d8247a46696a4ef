package extras

import (
	"github.com/retailops/turnos-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateExtraRequest struct {
	EmployeeID string          `json:"employee_id"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Detail     string          `json:"detail"`
	Kind       int             `json:"kind"` // 1 = bonus, 2 = deduction
}

func (r *CreateExtraRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2020 and 2100"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if validator.IsEmpty(r.Detail) {
		errs = append(errs, validator.ValidationError{Field: "detail", Message: "is required"})
	}
	if r.Kind != int(KindBonus) && r.Kind != int(KindDeduction) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 1 (bonus) or 2 (deduction)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExtraResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Detail       string          `json:"detail"`
	Kind         int             `json:"kind"`
}

type ExtraFilter struct {
	Year       int
	Month      *int
	EmployeeID *string
}
