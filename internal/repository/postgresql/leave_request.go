package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository. The date string is cast by the store,
// so malformed dates and unknown employees surface as store errors.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, date, reason, status)
		VALUES ($1, $2::date, $3, $4)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query, request.EmployeeID, request.Date, request.Reason, request.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create leave request: %w", err)
	}

	return id, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, e.name, to_char(lr.date, 'YYYY-MM-DD'),
			COALESCE(lr.reason, ''), lr.status, lr.created_at
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		ORDER BY lr.created_at DESC, lr.id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequestResponse{}
	for rows.Next() {
		var lr leave.LeaveRequestResponse
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.EmployeeName, &lr.Date, &lr.Reason, &lr.Status, &lr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave requests: %w", err)
	}

	return requests, nil
}
