package employee

import (
	"github.com/retailops/turnos-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName                string          `json:"first_name"`
	LastName                 string          `json:"last_name"`
	Email                    string          `json:"email"`
	HireDate                 string          `json:"hire_date"` // DD/MM/YYYY
	HourlyRate               decimal.Decimal `json:"hourly_rate"`
	VacationDaysRemaining    int             `json:"vacation_days_remaining"`
	VacationHoursEntitlement int             `json:"vacation_hours_entitlement"`
	PhotoURL                 *string         `json:"photo_url,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if _, ok := validator.ParseDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a DD/MM/YYYY date"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.VacationDaysRemaining < 0 {
		errs = append(errs, validator.ValidationError{Field: "vacation_days_remaining", Message: "must be non-negative"})
	}
	if r.VacationHoursEntitlement < 0 {
		errs = append(errs, validator.ValidationError{Field: "vacation_hours_entitlement", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                       string           `json:"-"`
	FirstName                *string          `json:"first_name,omitempty"`
	LastName                 *string          `json:"last_name,omitempty"`
	Email                    *string          `json:"email,omitempty"`
	HireDate                 *string          `json:"hire_date,omitempty"`
	VacationDaysRemaining    *int             `json:"vacation_days_remaining,omitempty"`
	VacationHoursEntitlement *int             `json:"vacation_hours_entitlement,omitempty"`
	PhotoURL                 *string          `json:"photo_url,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.HireDate != nil {
		if _, ok := validator.ParseDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a DD/MM/YYYY date"})
		}
	}
	if r.VacationDaysRemaining != nil && *r.VacationDaysRemaining < 0 {
		errs = append(errs, validator.ValidationError{Field: "vacation_days_remaining", Message: "must be non-negative"})
	}
	if r.VacationHoursEntitlement != nil && *r.VacationHoursEntitlement < 0 {
		errs = append(errs, validator.ValidationError{Field: "vacation_hours_entitlement", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangeRateRequest struct {
	ID     string          `json:"-"`
	Rate   decimal.Decimal `json:"rate"`
	Policy string          `json:"policy"` // retroactivo_mes | desde_hoy | proximo_mes
}

func (r *ChangeRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Rate.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be positive"})
	}
	if !validator.IsInSlice(r.Policy, []string{"retroactivo_mes", "desde_hoy", "proximo_mes"}) {
		errs = append(errs, validator.ValidationError{Field: "policy", Message: "must be retroactivo_mes, desde_hoy or proximo_mes"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                       string          `json:"id"`
	FirstName                string          `json:"first_name"`
	LastName                 string          `json:"last_name"`
	FullName                 string          `json:"full_name"`
	Email                    string          `json:"email"`
	HireDate                 string          `json:"hire_date"`
	HourlyRate               decimal.Decimal `json:"hourly_rate"`
	VacationDaysRemaining    int             `json:"vacation_days_remaining"`
	VacationHoursEntitlement int             `json:"vacation_hours_entitlement"`
	PhotoURL                 *string         `json:"photo_url,omitempty"`
}

type ChangeRateResponse struct {
	Employee   EmployeeResponse `json:"employee"`
	Propagated bool             `json:"propagated"`
	// Set when the rate was saved but schedule recomputation failed.
	PropagationError *string `json:"propagation_error,omitempty"`
}
