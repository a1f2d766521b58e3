package support

import (
	"context"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/support"
)

type SupportServiceImpl struct {
	supportRequestRepo support.SupportRequestRepository
}

func NewSupportService(supportRequestRepo support.SupportRequestRepository) support.SupportService {
	return &SupportServiceImpl{supportRequestRepo: supportRequestRepo}
}

// ListRequests implements support.SupportService. The "All Status" sentinel disables the status filter.
func (s *SupportServiceImpl) ListRequests(ctx context.Context, filter support.Filter) ([]support.SupportRequest, error) {
	if filter.Status == support.AllStatus {
		filter.Status = ""
	}
	return s.supportRequestRepo.List(ctx, filter)
}
