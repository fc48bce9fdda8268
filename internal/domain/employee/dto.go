package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Name     string  `json:"name"`
	LastName string  `json:"lastName"`
	Cedula   string  `json:"cedula"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsAdmin  bool    `json:"isAdmin"`
	SedeID   *string `json:"sedeId,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Cedula = strings.TrimSpace(r.Cedula)

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName is required",
		})
	} else if len(r.LastName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Cedula) {
		errs = append(errs, validator.ValidationError{
			Field:   "cedula",
			Message: "cedula is required",
		})
	} else if !validator.IsValidCedula(r.Cedula) {
		errs = append(errs, validator.ValidationError{
			Field:   "cedula",
			Message: ErrInvalidCedula.Error(),
		})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.SedeID != nil && validator.IsEmpty(*r.SedeID) {
		r.SedeID = nil
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries a partial update. Cedula is accepted only to
// reject attempts to change it.
type UpdateEmployeeRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	LastName *string `json:"lastName,omitempty"`
	Cedula   *string `json:"cedula,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsAdmin  *bool   `json:"isAdmin,omitempty"`
	SedeID   *string `json:"sedeId,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName must not be empty",
		})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Search *string `json:"search,omitempty"`
	SedeID *string `json:"sedeId,omitempty"`
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	LastName  string  `json:"lastName"`
	Cedula    string  `json:"cedula"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	IsAdmin   bool    `json:"isAdmin"`
	SedeID    *string `json:"sedeId,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		LastName:  e.LastName,
		Cedula:    e.Cedula,
		Email:     e.Email,
		Phone:     e.Phone,
		IsAdmin:   e.IsAdmin,
		SedeID:    e.SedeID,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}
