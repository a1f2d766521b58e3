package leave

import "context"

type LeaveService interface {
	SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (SubmitLeaveResponse, error)
	ListLeave(ctx context.Context) ([]LeaveRequestResponse, error)
}
