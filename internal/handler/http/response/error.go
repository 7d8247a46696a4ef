package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/retailops/turnos-backend/internal/domain/auth"
	"github.com/retailops/turnos-backend/internal/domain/employee"
	"github.com/retailops/turnos-backend/internal/domain/extras"
	"github.com/retailops/turnos-backend/internal/domain/holiday"
	"github.com/retailops/turnos-backend/internal/domain/receipt"
	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/domain/shift"
	"github.com/retailops/turnos-backend/internal/domain/timeclock"
	"github.com/retailops/turnos-backend/internal/domain/vacation"
	"github.com/retailops/turnos-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var insufficientBalance *vacation.InsufficientBalanceError
	if errors.As(err, &insufficientBalance) {
		BadRequest(w, "Insufficient vacation balance", map[string]string{
			"requested": fmt.Sprintf("%d", insufficientBalance.Requested),
			"remaining": fmt.Sprintf("%d", insufficientBalance.Remaining),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already registered for that date")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrEntryNotFound):
		NotFound(w, "Schedule entry not found")

	// Timeclock domain errors
	case errors.Is(err, timeclock.ErrAlreadyClockedIn):
		BadRequest(w, "Shift already open, EGRESO expected next", nil)
	case errors.Is(err, timeclock.ErrNotClockedIn):
		BadRequest(w, "No open shift, INGRESO expected next", nil)
	case errors.Is(err, timeclock.ErrEventNotFound):
		NotFound(w, "Clock event not found")
	case errors.Is(err, timeclock.ErrNoMatchingPair):
		BadRequest(w, "No adjacent event completes a clock pair", nil)

	// Vacation domain errors
	case errors.Is(err, vacation.ErrBookingNotFound):
		NotFound(w, "Vacation booking not found")

	// Extras domain errors
	case errors.Is(err, extras.ErrPaymentNotFound):
		NotFound(w, "Extra payment not found")

	// Receipt domain errors
	case errors.Is(err, receipt.ErrReceiptNotFound):
		NotFound(w, "Receipt not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
