package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (int64, error)
	Update(ctx context.Context, e Employee) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]Employee, error)
	Count(ctx context.Context) (int64, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
}
