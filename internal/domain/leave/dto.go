package leave

import "time"

type SubmitLeaveRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Reason     string `json:"reason"`
}

type SubmitLeaveResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type LeaveRequestResponse struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"name"`
	Date         string    `json:"date"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
