package attendance

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// today returns the current UTC calendar date at midnight.
func (s *AttendanceServiceImpl) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService. Repeated check-ins on the same day
// each insert a new row.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	inserted, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       s.today(),
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	return attendance.CheckInResponse{Inserted: inserted}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	return s.attendanceRepo.List(ctx)
}

// CountByStatus implements attendance.AttendanceService. Unknown statuses count zero.
func (s *AttendanceServiceImpl) CountByStatus(ctx context.Context, status string) (attendance.CountResponse, error) {
	count, err := s.attendanceRepo.CountByStatus(ctx, attendance.Status(status))
	if err != nil {
		return attendance.CountResponse{}, err
	}
	return attendance.CountResponse{Count: count}, nil
}

// MarkAbsent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context, date time.Time) (attendance.MarkAbsentResponse, error) {
	if date.IsZero() {
		date = s.today()
	}
	y, m, d := date.UTC().Date()

	inserted, err := s.attendanceRepo.MarkAbsent(ctx, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return attendance.MarkAbsentResponse{}, err
	}
	return attendance.MarkAbsentResponse{Inserted: inserted}, nil
}
