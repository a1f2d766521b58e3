package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Count(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// Add implements EmployeeHandler.
func (h *employeeHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req employee.AddEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.employeeService.AddEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Remove implements EmployeeHandler.
func (h *employeeHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	var req employee.RemoveEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RemoveEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.employeeService.RemoveEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, employees)
}

// Count implements EmployeeHandler.
func (h *employeeHandlerImpl) Count(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.CountEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}
