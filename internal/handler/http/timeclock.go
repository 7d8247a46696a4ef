package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/retailops/turnos-backend/internal/domain/timeclock"
	"github.com/retailops/turnos-backend/internal/handler/http/response"
)

type TimeclockHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	EditEvent(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
	ListTimesheet(w http.ResponseWriter, r *http.Request)
}

type TimeclockHandlerImpl struct {
	timeclockService timeclock.TimeclockService
}

func NewTimeclockHandler(timeclockService timeclock.TimeclockService) TimeclockHandler {
	return &TimeclockHandlerImpl{timeclockService: timeclockService}
}

// Punch implements TimeclockHandler.
func (h *TimeclockHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req timeclock.PunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	event, err := h.timeclockService.Punch(r.Context(), req)
	if err != nil {
		slog.Error("Punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock event recorded", event)
}

// EditEvent implements TimeclockHandler.
func (h *TimeclockHandlerImpl) EditEvent(w http.ResponseWriter, r *http.Request) {
	var req timeclock.EditEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("EditEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	event, err := h.timeclockService.EditEvent(r.Context(), req)
	if err != nil {
		slog.Error("EditEvent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, event)
}

// ListEvents implements TimeclockHandler.
func (h *TimeclockHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year query parameter is required", nil)
		return
	}

	events, err := h.timeclockService.ListEvents(r.Context(), year, queryStringOptional(r, "employee_id"))
	if err != nil {
		slog.Error("ListEvents service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// ListTimesheet implements TimeclockHandler.
func (h *TimeclockHandlerImpl) ListTimesheet(w http.ResponseWriter, r *http.Request) {
	year, okYear := queryInt(r, "year")
	month, okMonth := queryInt(r, "month")
	if !okYear || !okMonth {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	entries, err := h.timeclockService.ListTimesheet(r.Context(), year, month, queryStringOptional(r, "employee_id"))
	if err != nil {
		slog.Error("ListTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
