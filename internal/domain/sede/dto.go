package sede

import (
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/validator"
)

type CreateSedeRequest struct {
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	Coordinates *string `json:"coordinates,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (r *CreateSedeRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if r.Coordinates != nil {
		if validator.IsEmpty(*r.Coordinates) {
			r.Coordinates = nil
		} else if _, ok := utils.ParseCoordinates(*r.Coordinates); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "coordinates",
				Message: ErrInvalidCoordinates.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Active returns the requested flag, defaulting to true.
func (r CreateSedeRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

type UpdateSedeRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Coordinates *string `json:"coordinates,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (r *UpdateSedeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		} else if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	// An empty string clears the coordinates.
	if r.Coordinates != nil && !validator.IsEmpty(*r.Coordinates) {
		if _, ok := utils.ParseCoordinates(*r.Coordinates); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "coordinates",
				Message: ErrInvalidCoordinates.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SedeFilter struct {
	ActiveOnly bool
}

type SedeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	Coordinates *string `json:"coordinates,omitempty"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func ToResponse(s Sede) SedeResponse {
	return SedeResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Coordinates: s.Coordinates,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}
