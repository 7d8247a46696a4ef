package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/retailops/turnos-backend/internal/domain/vacation"
	"github.com/retailops/turnos-backend/internal/handler/http/response"
)

type VacationHandler interface {
	Book(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &VacationHandlerImpl{vacationService: vacationService}
}

// Book implements VacationHandler.
func (h *VacationHandlerImpl) Book(w http.ResponseWriter, r *http.Request) {
	var req vacation.BookVacationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BookVacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	booking, err := h.vacationService.Book(r.Context(), req)
	if err != nil {
		slog.Error("BookVacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation booked", booking)
}

// List implements VacationHandler.
func (h *VacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.vacationService.List(r.Context(), queryStringOptional(r, "employee_id"))
	if err != nil {
		slog.Error("ListVacations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, bookings)
}
