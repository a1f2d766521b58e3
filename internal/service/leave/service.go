package leave

import (
	"context"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRequestRepo leave.LeaveRequestRepository
}

func NewLeaveService(leaveRequestRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{leaveRequestRepo: leaveRequestRepo}
}

// SubmitLeave implements leave.LeaveService. Employee and date checks are left to the store.
func (s *LeaveServiceImpl) SubmitLeave(ctx context.Context, req leave.SubmitLeaveRequest) (leave.SubmitLeaveResponse, error) {
	id, err := s.leaveRequestRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.SubmitLeaveResponse{}, err
	}

	return leave.SubmitLeaveResponse{Success: true, ID: id}, nil
}

// ListLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeave(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	return s.leaveRequestRepo.List(ctx)
}
