package auth

import (
	"context"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
)

type AuthService interface {
	// Login succeeds iff an employee with the cedula exists.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Logout revokes accessToken until it expires.
	Logout(ctx context.Context, accessToken string) error

	Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)
}
