package leave

import "context"

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (int64, error)
	List(ctx context.Context) ([]LeaveRequestResponse, error)
}
