package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`INSERT INTO attendance (employee_id, date, status) VALUES ($1, $2, $3)`,
		a.EmployeeID, a.Date, a.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create attendance: %w", err)
	}

	return tag.RowsAffected(), nil
}

// List implements attendance.AttendanceRepository. Row order is left to the store.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, e.name, to_char(a.date, 'YYYY-MM-DD'), a.status
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.AttendanceResponse{}
	for rows.Next() {
		var rec attendance.AttendanceResponse
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Date, &rec.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}

	return records, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByStatus(ctx context.Context, status attendance.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance by status: %w", err)
	}

	return count, nil
}

// MarkAbsent implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) MarkAbsent(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, status)
		SELECT e.id, $1::date, $2
		FROM employees e
		WHERE e.created_at::date <= $1::date
		AND NOT EXISTS (
			SELECT 1 FROM attendance a
			WHERE a.employee_id = e.id AND a.date = $1::date
		)
	`

	tag, err := q.Exec(ctx, query, date, attendance.StatusAbsent)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absent employees: %w", err)
	}

	return tag.RowsAffected(), nil
}
