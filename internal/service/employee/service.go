package employee

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// AddEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AddEmployee(ctx context.Context, req employee.AddEmployeeRequest) (employee.AddEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.AddEmployeeResponse{}, err
	}

	id, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:         req.Name,
		Email:        req.Email,
		Role:         employee.Role(req.Role),
		SalaryPerDay: req.SalaryPerDay,
	})
	if err != nil {
		return employee.AddEmployeeResponse{}, err
	}

	return employee.AddEmployeeResponse{ID: id}, nil
}

// UpdateEmployee implements employee.EmployeeService. Zero updated rows means no such id.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.UpdateEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.UpdateEmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, employee.Employee{
		ID:           req.ID,
		Name:         req.Name,
		Email:        req.Email,
		Role:         employee.Role(req.Role),
		SalaryPerDay: req.SalaryPerDay,
	})
	if err != nil {
		return employee.UpdateEmployeeResponse{}, err
	}

	return employee.UpdateEmployeeResponse{Updated: updated}, nil
}

// RemoveEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RemoveEmployee(ctx context.Context, req employee.RemoveEmployeeRequest) (employee.RemoveEmployeeResponse, error) {
	deleted, err := s.employeeRepo.Delete(ctx, req.ID)
	if err != nil {
		return employee.RemoveEmployeeResponse{}, err
	}

	return employee.RemoveEmployeeResponse{Deleted: deleted}, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// CountEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CountEmployees(ctx context.Context) (employee.CountResponse, error) {
	count, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return employee.CountResponse{}, err
	}
	return employee.CountResponse{Count: count}, nil
}
