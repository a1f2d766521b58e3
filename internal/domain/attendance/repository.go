package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (int64, error)
	List(ctx context.Context) ([]AttendanceResponse, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	// MarkAbsent records Absent for every employee who existed on date and has no row for it.
	MarkAbsent(ctx context.Context, date time.Time) (int64, error)
}
