package payroll

import "context"

type PayrollService interface {
	GetPayroll(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, error)
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	ExportPayroll(ctx context.Context, req ExportPayrollRequest) (ExportFile, error)
}
