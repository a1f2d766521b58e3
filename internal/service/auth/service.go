package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.LoginResponse, error) {
	if loginReq.Email == "" || loginReq.Password == "" {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	emp, err := a.employeeRepo.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if emp.Password == nil || !passwordMatches(*emp.Password, loginReq.Password) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := a.jwtService.GenerateAccessToken(emp.ID, emp.Email, string(emp.Role))
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		Success: true,
		User:    employee.ToResponse(emp),
		Token:   token,
	}, nil
}

// passwordMatches verifies bcrypt hashes. Anything else is a legacy plaintext
// credential and is compared as is.
func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	slog.Warn("plaintext credential compared, rehash required")
	return stored == given
}
