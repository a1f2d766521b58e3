package leave

import "time"

const StatusPending = "Pending"

type LeaveRequest struct {
	ID         int64
	EmployeeID int64
	// Date is kept as received; the store parses it.
	Date      string
	Reason    string
	Status    string
	CreatedAt time.Time
}
