package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// List implements PayrollHandler. An absent or empty ?month= lists every month.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payroll.PayrollFilter{Month: r.URL.Query().Get("month")}

	records, err := h.payrollService.GetPayroll(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, records)
}

// Generate implements PayrollHandler.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GeneratePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.payrollService.GeneratePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Export implements PayrollHandler.
func (h *payrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := payroll.ExportPayrollRequest{
		Month:  query.Get("month"),
		Format: payroll.ExportFormat(query.Get("format")),
	}

	file, err := h.payrollService.ExportPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Content)
}
