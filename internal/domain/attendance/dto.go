package attendance

type CheckInRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

type CheckInResponse struct {
	Inserted int64 `json:"inserted"`
}

// AttendanceResponse is an attendance row joined with the employee's name.
type AttendanceResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"name"`
	Date         string `json:"date"`
	Status       Status `json:"status"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type MarkAbsentResponse struct {
	Inserted int64 `json:"inserted"`
}
