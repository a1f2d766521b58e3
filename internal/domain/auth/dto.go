package auth

import "github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool                      `json:"success"`
	User    employee.EmployeeResponse `json:"user"`
	Token   string                    `json:"token"`
}
