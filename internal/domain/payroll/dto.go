package payroll

import (
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/money"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
)

// PayrollResponse is a payroll row joined with the employee name, after defaulting:
// basic_salary and net_pay fall back to the employee's salary_per_day then 0,
// tax_withheld falls back to 0 and status to Pending.
type PayrollResponse struct {
	ID           int64        `json:"id"`
	EmployeeID   int64        `json:"employee_id"`
	EmployeeName string       `json:"name"`
	Month        string       `json:"month"`
	BasicSalary  money.Amount `json:"basic_salary"`
	TaxWithheld  money.Amount `json:"tax_withheld"`
	NetPay       money.Amount `json:"net_pay"`
	Status       Status       `json:"status"`
}

type PayrollFilter struct {
	Month string
}

type GeneratePayrollRequest struct {
	Month string `json:"month" validate:"required"`
}

func (r *GeneratePayrollRequest) Validate() error {
	if validator.IsEmpty(r.Month) {
		return validator.ValidationErrors{{Field: "month", Message: "is required"}}
	}
	return validator.Struct(r)
}

type GeneratePayrollResponse struct {
	Success  bool   `json:"success"`
	Inserted int64  `json:"inserted,omitempty"`
	Message  string `json:"message,omitempty"`
}

type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"
)

type ExportPayrollRequest struct {
	Month  string       `json:"month"`
	Format ExportFormat `json:"format" validate:"oneof=xlsx pdf"`
}

func (r *ExportPayrollRequest) Validate() error {
	if r.Format == "" {
		r.Format = ExportXLSX
	}
	return validator.Struct(r)
}

// ExportFile is a rendered payroll document ready to be streamed.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
