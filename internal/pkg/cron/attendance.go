package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	interval          time.Duration
	now               func() time.Time
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService, interval time.Duration) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		interval:          interval,
		now:               time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) error {
	return scheduler.AddJob("mark_absent_employees", j.interval, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees records Absent for yesterday (UTC) for every employee who existed
// then and did not check in. Employees already marked are skipped, so reruns are harmless.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	yesterday := j.now().UTC().AddDate(0, 0, -1)

	resp, err := j.attendanceService.MarkAbsent(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to mark absent employees: %w", err)
	}

	slog.Info("Cron: Marked absent employees", "date", yesterday.Format(time.DateOnly), "count", resp.Inserted)
	return nil
}
