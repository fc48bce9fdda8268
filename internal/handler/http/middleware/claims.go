package middleware

import (
	"context"

	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// EmployeeID returns the employee_id claim of the verified token in ctx.
func EmployeeID(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	id, _ := claims[jwt.ClaimEmployeeID].(string)
	return id
}
