package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/support"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
)

type SupportHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
}

type supportHandlerImpl struct {
	supportService support.SupportService
}

func NewSupportHandler(supportService support.SupportService) SupportHandler {
	return &supportHandlerImpl{supportService: supportService}
}

// ListRequests implements SupportHandler.
func (h *supportHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := support.Filter{
		Type:   query.Get("type"),
		Status: query.Get("status"),
	}

	requests, err := h.supportService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, requests)
}
