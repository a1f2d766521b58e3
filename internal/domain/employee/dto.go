package employee

import (
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/money"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
)

type AddEmployeeRequest struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Role         string       `json:"role" validate:"oneof=ADMIN EMPLOYEE HR"`
	SalaryPerDay money.Amount `json:"salary_per_day"`
}

func (r *AddEmployeeRequest) Validate() error {
	return validateRoleAndSalary(r, r.SalaryPerDay)
}

type UpdateEmployeeRequest struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Role         string       `json:"role" validate:"oneof=ADMIN EMPLOYEE HR"`
	SalaryPerDay money.Amount `json:"salary_per_day"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validateRoleAndSalary(r, r.SalaryPerDay)
}

type RemoveEmployeeRequest struct {
	ID int64 `json:"id"`
}

func validateRoleAndSalary(req interface{}, salary money.Amount) error {
	var errs validator.ValidationErrors

	if err := validator.Struct(req); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_per_day",
			Message: "must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeResponse is the public shape of an employee. The password is never exposed.
type EmployeeResponse struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Role         Role         `json:"role"`
	SalaryPerDay money.Amount `json:"salary_per_day"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Role:         e.Role,
		SalaryPerDay: e.SalaryPerDay,
	}
}

type AddEmployeeResponse struct {
	ID int64 `json:"id"`
}

type UpdateEmployeeResponse struct {
	Updated int64 `json:"updated"`
}

type RemoveEmployeeResponse struct {
	Deleted int64 `json:"deleted"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
