package timeclock

import (
	"github.com/retailops/turnos-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Action     string `json:"action"` // INGRESO | EGRESO
	Date       string `json:"date"`   // DD/MM/YYYY
	Time       string `json:"time"`   // HH:MM:SS
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Action != string(ActionIn) && r.Action != string(ActionOut) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "must be INGRESO or EGRESO"})
	}
	if _, ok := validator.ParseDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a DD/MM/YYYY date"})
	}
	if !validator.IsValidClockTime(r.Time) {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "must be an HH:MM:SS time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EditEventRequest struct {
	ID   string `json:"-"`
	Time string `json:"time"` // HH:MM:SS
}

func (r *EditEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClockTime(r.Time) {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "must be an HH:MM:SS time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Action     string `json:"action"`
	Time       string `json:"time"`
}

type TimesheetEntryResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Date          string          `json:"date"`
	ClockIn       string          `json:"clock_in"`
	ClockOut      string          `json:"clock_out"`
	WorkedMinutes int             `json:"worked_minutes"`
	WorkedHours   decimal.Decimal `json:"worked_hours"`
	Pay           decimal.Decimal `json:"pay"`
}
