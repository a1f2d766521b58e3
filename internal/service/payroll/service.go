package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/money"
)

type PayrollServiceImpl struct {
	transactor   database.Transactor
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(
	transactor database.Transactor,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		transactor:   transactor,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	filter.Month = strings.TrimSpace(filter.Month)
	return s.payrollRepo.List(ctx, filter)
}

// GeneratePayroll implements payroll.PayrollService. It inserts one Pending row per
// employee with basic salary and net pay equal to the daily salary and no tax.
// Repeated runs for the same month insert new rows.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	var resp payroll.GeneratePayrollResponse
	err := s.transactor.RunInTx(ctx, func(txCtx context.Context) error {
		employees, err := s.employeeRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		if len(employees) == 0 {
			resp = payroll.GeneratePayrollResponse{Success: false, Message: payroll.NoEmployeesMessage}
			return nil
		}

		pending := payroll.StatusPending
		rows := make([]payroll.Payroll, 0, len(employees))
		for _, e := range employees {
			salary := e.SalaryPerDay
			rows = append(rows, payroll.Payroll{
				EmployeeID:  e.ID,
				Month:       req.Month,
				BasicSalary: &salary,
				TaxWithheld: &money.Zero,
				NetPay:      &salary,
				Status:      &pending,
			})
		}

		inserted, err := s.payrollRepo.CreateBatch(txCtx, rows)
		if err != nil {
			return err
		}
		resp = payroll.GeneratePayrollResponse{Success: true, Inserted: inserted}
		return nil
	})
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	slog.Info("payroll generated", "month", req.Month, "inserted", resp.Inserted)
	return resp, nil
}

// ExportPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) ExportPayroll(ctx context.Context, req payroll.ExportPayrollRequest) (payroll.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return payroll.ExportFile{}, err
	}

	rows, err := s.GetPayroll(ctx, payroll.PayrollFilter{Month: req.Month})
	if err != nil {
		return payroll.ExportFile{}, err
	}

	name := "payroll"
	if req.Month != "" {
		name += "-" + req.Month
	}

	switch req.Format {
	case payroll.ExportXLSX:
		content, err := export.PayrollXLSX(req.Month, rows)
		if err != nil {
			return payroll.ExportFile{}, err
		}
		return payroll.ExportFile{Filename: name + ".xlsx", ContentType: export.ContentTypeXLSX, Content: content}, nil
	case payroll.ExportPDF:
		content, err := export.PayrollPDF(req.Month, rows)
		if err != nil {
			return payroll.ExportFile{}, err
		}
		return payroll.ExportFile{Filename: name + ".pdf", ContentType: export.ContentTypePDF, Content: content}, nil
	}

	return payroll.ExportFile{}, payroll.ErrUnsupportedExportFormat
}
