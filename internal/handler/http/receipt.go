package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/retailops/turnos-backend/internal/domain/receipt"
	"github.com/retailops/turnos-backend/internal/handler/http/response"
)

type ReceiptHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	GetPDF(w http.ResponseWriter, r *http.Request)
}

type ReceiptHandlerImpl struct {
	receiptService receipt.ReceiptService
}

func NewReceiptHandler(receiptService receipt.ReceiptService) ReceiptHandler {
	return &ReceiptHandlerImpl{receiptService: receiptService}
}

func receiptQueryFromRequest(r *http.Request) (receipt.ReceiptQuery, bool) {
	year, okYear := queryInt(r, "year")
	month, okMonth := queryInt(r, "month")
	employeeID := r.URL.Query().Get("employee_id")
	if !okYear || !okMonth || employeeID == "" {
		return receipt.ReceiptQuery{}, false
	}
	return receipt.ReceiptQuery{EmployeeID: employeeID, Year: year, Month: month}, true
}

// Get implements ReceiptHandler.
func (h *ReceiptHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	query, ok := receiptQueryFromRequest(r)
	if !ok {
		response.BadRequest(w, "employee_id, year and month query parameters are required", nil)
		return
	}

	rec, err := h.receiptService.Get(r.Context(), query)
	if err != nil {
		slog.Error("GetReceipt service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// Save implements ReceiptHandler.
func (h *ReceiptHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req receipt.SaveReceiptRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveReceipt decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.receiptService.Save(r.Context(), req)
	if err != nil {
		slog.Error("SaveReceipt service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Receipt saved", rec)
}

// Reset implements ReceiptHandler.
func (h *ReceiptHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	query, ok := receiptQueryFromRequest(r)
	if !ok {
		response.BadRequest(w, "employee_id, year and month query parameters are required", nil)
		return
	}

	rec, err := h.receiptService.Reset(r.Context(), query)
	if err != nil {
		slog.Error("ResetReceipt service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Receipt reset", rec)
}

// GetPDF implements ReceiptHandler.
func (h *ReceiptHandlerImpl) GetPDF(w http.ResponseWriter, r *http.Request) {
	query, ok := receiptQueryFromRequest(r)
	if !ok {
		response.BadRequest(w, "employee_id, year and month query parameters are required", nil)
		return
	}

	content, filename, err := h.receiptService.RenderPDF(r.Context(), query)
	if err != nil {
		slog.Error("GetReceiptPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.PDF(w, filename, content)
}
