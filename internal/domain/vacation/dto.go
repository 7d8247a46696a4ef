package vacation

import (
	"github.com/retailops/turnos-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type BookVacationRequest struct {
	EmployeeID string `json:"employee_id"`
	Days       int    `json:"days"`
	StartDate  string `json:"start_date"` // DD/MM/YYYY
	EndDate    string `json:"end_date"`   // DD/MM/YYYY
	Type       string `json:"type"`       // vacaciones | vacaciones sin goce
}

func (r *BookVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Days <= 0 {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "must be positive"})
	}
	start, okStart := validator.ParseDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a DD/MM/YYYY date"})
	}
	end, okEnd := validator.ParseDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a DD/MM/YYYY date"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not precede start_date"})
	}
	if r.Type != string(TypePaid) && r.Type != string(TypeUnpaid) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'vacaciones' or 'vacaciones sin goce'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BookingResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Days          int             `json:"days"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Type          string          `json:"type"`
	PerDayHours   decimal.Decimal `json:"per_day_hours"`
	PerDayPay     decimal.Decimal `json:"per_day_pay"`
	DaysRemaining int             `json:"days_remaining"`
}
