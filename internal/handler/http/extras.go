package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/retailops/turnos-backend/internal/domain/extras"
	"github.com/retailops/turnos-backend/internal/handler/http/response"
)

type ExtrasHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ExtrasHandlerImpl struct {
	extrasService extras.ExtrasService
}

func NewExtrasHandler(extrasService extras.ExtrasService) ExtrasHandler {
	return &ExtrasHandlerImpl{extrasService: extrasService}
}

// Create implements ExtrasHandler.
func (h *ExtrasHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req extras.CreateExtraRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateExtra decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.extrasService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateExtra service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Extra payment created", created)
}

// List implements ExtrasHandler.
func (h *ExtrasHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year query parameter is required", nil)
		return
	}

	month, ok := queryIntOptional(r, "month")
	if !ok {
		response.BadRequest(w, "month query parameter must be an integer", nil)
		return
	}

	payments, err := h.extrasService.List(r.Context(), extras.ExtraFilter{
		Year:       year,
		Month:      month,
		EmployeeID: queryStringOptional(r, "employee_id"),
	})
	if err != nil {
		slog.Error("ListExtras service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// Delete implements ExtrasHandler.
func (h *ExtrasHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.extrasService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteExtra service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Extra payment deleted", nil)
}
