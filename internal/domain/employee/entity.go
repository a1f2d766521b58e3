package employee

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/money"
)

type Employee struct {
	ID           int64
	Name         string
	Email        string
	Password     *string
	Role         Role
	SalaryPerDay money.Amount
	CreatedAt    time.Time
}

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleHR       Role = "HR"
)

