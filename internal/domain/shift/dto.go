package shift

import "github.com/retailops/turnos-backend/internal/pkg/validator"

type CreateShiftRequest struct {
	Name          string `json:"name"`
	StartHour     int    `json:"start_hour"`
	EndHour       int    `json:"end_hour"`
	DurationHours int    `json:"duration_hours"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidHour(r.StartHour) {
		errs = append(errs, validator.ValidationError{Field: "start_hour", Message: "must be between 0 and 23"})
	}
	if !validator.IsValidHour(r.EndHour) {
		errs = append(errs, validator.ValidationError{Field: "end_hour", Message: "must be between 0 and 23"})
	}
	if validator.IsValidHour(r.StartHour) && validator.IsValidHour(r.EndHour) &&
		r.DurationHours != Duration(r.StartHour, r.EndHour) {
		errs = append(errs, validator.ValidationError{Field: "duration_hours", Message: "does not match start and end hours"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID string `json:"-"`
	CreateShiftRequest
}

type ShiftResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StartHour     int    `json:"start_hour"`
	EndHour       int    `json:"end_hour"`
	DurationHours int    `json:"duration_hours"`
}
