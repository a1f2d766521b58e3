package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     Status
}
