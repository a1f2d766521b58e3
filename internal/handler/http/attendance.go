package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	PresentCount(w http.ResponseWriter, r *http.Request)
	AbsentCount(w http.ResponseWriter, r *http.Request)
	Count(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, records)
}

// PresentCount implements AttendanceHandler.
func (h *attendanceHandlerImpl) PresentCount(w http.ResponseWriter, r *http.Request) {
	h.countByStatus(w, r, string(attendance.StatusPresent))
}

// AbsentCount implements AttendanceHandler.
func (h *attendanceHandlerImpl) AbsentCount(w http.ResponseWriter, r *http.Request) {
	h.countByStatus(w, r, string(attendance.StatusAbsent))
}

// Count implements AttendanceHandler for an arbitrary ?status= value.
func (h *attendanceHandlerImpl) Count(w http.ResponseWriter, r *http.Request) {
	h.countByStatus(w, r, r.URL.Query().Get("status"))
}

func (h *attendanceHandlerImpl) countByStatus(w http.ResponseWriter, r *http.Request, status string) {
	resp, err := h.attendanceService.CountByStatus(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}
