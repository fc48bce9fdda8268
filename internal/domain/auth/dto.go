package auth

import (
	"strings"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Cedula string `json:"cedula"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Cedula = strings.TrimSpace(r.Cedula)
	if validator.IsEmpty(r.Cedula) {
		errs = append(errs, validator.ValidationError{
			Field:   "cedula",
			Message: "cedula is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	Employee    employee.EmployeeResponse `json:"employee"`
	AccessToken string                    `json:"accessToken"`
	TokenType   string                    `json:"tokenType"`
	ExpiresAt   int64                     `json:"expiresAt"`
}
