package holiday

import "github.com/retailops/turnos-backend/internal/pkg/validator"

type CreateHolidayRequest struct {
	Date  string `json:"date"` // DD/MM/YYYY
	Label string `json:"label"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.ParseDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a DD/MM/YYYY date"})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{Field: "label", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Label   string `json:"label"`
	Weekday string `json:"weekday"`
	Year    int    `json:"year"`
}
