package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/money"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, e.name, p.month,
			COALESCE(p.basic_salary, e.salary_per_day, 0),
			COALESCE(p.tax_withheld, 0),
			COALESCE(p.net_pay, e.salary_per_day, 0),
			COALESCE(p.status, $1)
		FROM payroll p
		JOIN employees e ON p.employee_id = e.id
	`
	args := []interface{}{payroll.StatusPending}

	if filter.Month != "" {
		query += " WHERE p.month = $2"
		args = append(args, filter.Month)
	}
	query += " ORDER BY p.id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll: %w", err)
	}
	defer rows.Close()

	records := []payroll.PayrollResponse{}
	for rows.Next() {
		var rec payroll.PayrollResponse
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Month,
			&rec.BasicSalary, &rec.TaxWithheld, &rec.NetPay, &rec.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll: %w", err)
	}

	return records, nil
}

// CreateBatch implements payroll.PayrollRepository with a single COPY. Nil amounts and
// status are stored as NULL so reads fall back to the employee's salary.
func (r *payrollRepositoryImpl) CreateBatch(ctx context.Context, records []payroll.Payroll) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	columns := []string{"employee_id", "month", "basic_salary", "tax_withheld", "net_pay", "status"}
	inserted, err := q.CopyFrom(ctx, pgx.Identifier{"payroll"}, columns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			var status *string
			if rec.Status != nil {
				s := string(*rec.Status)
				status = &s
			}
			return []any{
				rec.EmployeeID,
				rec.Month,
				nullableAmount(rec.BasicSalary),
				nullableAmount(rec.TaxWithheld),
				nullableAmount(rec.NetPay),
				status,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert payroll batch: %w", err)
	}

	return inserted, nil
}

func nullableAmount(a *money.Amount) any {
	if a == nil {
		return nil
	}
	return *a
}
