package employee

import "context"

type EmployeeService interface {
	AddEmployee(ctx context.Context, req AddEmployeeRequest) (AddEmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (UpdateEmployeeResponse, error)
	RemoveEmployee(ctx context.Context, req RemoveEmployeeRequest) (RemoveEmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	CountEmployees(ctx context.Context) (CountResponse, error)
}
