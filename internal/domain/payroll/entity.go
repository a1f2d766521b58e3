package payroll

import "github.com/cmlabs-hris/hris-payroll-go/internal/pkg/money"

type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
)

// Payroll is a stored payroll row. Money columns and status are nullable in the store.
type Payroll struct {
	ID          int64
	EmployeeID  int64
	Month       string
	BasicSalary *money.Amount
	TaxWithheld *money.Amount
	NetPay      *money.Amount
	Status      *Status
}
