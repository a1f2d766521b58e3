package payroll

import "context"

type PayrollRepository interface {
	// List returns defaulted rows; an empty filter month returns every month.
	List(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, error)
	CreateBatch(ctx context.Context, rows []Payroll) (int64, error)
}
