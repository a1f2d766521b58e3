package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)
	ListAttendance(ctx context.Context) ([]AttendanceResponse, error)
	CountByStatus(ctx context.Context, status string) (CountResponse, error)
	MarkAbsent(ctx context.Context, date time.Time) (MarkAbsentResponse, error)
}
