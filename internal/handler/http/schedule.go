package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetGrid(w http.ResponseWriter, r *http.Request)
	AssignShift(w http.ResponseWriter, r *http.Request)
	GetTotals(w http.ResponseWriter, r *http.Request)
	GetGridPDF(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// GetGrid implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetGrid(w http.ResponseWriter, r *http.Request) {
	year, okYear := queryInt(r, "year")
	month, okMonth := queryInt(r, "month")
	if !okYear || !okMonth {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	grid, err := h.scheduleService.GetGrid(r.Context(), schedule.GridFilter{
		Year:       year,
		Month:      month,
		EmployeeID: queryStringOptional(r, "employee_id"),
	})
	if err != nil {
		slog.Error("GetGrid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, grid)
}

// AssignShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.AssignShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.scheduleService.AssignShift(r.Context(), req)
	if err != nil {
		slog.Error("AssignShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// GetTotals implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetTotals(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year query parameter is required", nil)
		return
	}

	totals, err := h.scheduleService.GetTotals(r.Context(), year, queryStringOptional(r, "employee_id"))
	if err != nil {
		slog.Error("GetTotals service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, totals)
}

// GetGridPDF implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetGridPDF(w http.ResponseWriter, r *http.Request) {
	year, okYear := queryInt(r, "year")
	month, okMonth := queryInt(r, "month")
	if !okYear || !okMonth {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	content, filename, err := h.scheduleService.RenderGridPDF(r.Context(), year, month)
	if err != nil {
		slog.Error("GetGridPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.PDF(w, filename, content)
}
