package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCedula returns ErrEmployeeNotFound when no employee has the cedula.
	GetByCedula(ctx context.Context, cedula string) (Employee, error)

	// List returns employees matching the filter, ordered by name.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Count(ctx context.Context) (int64, error)
	ExistsByCedula(ctx context.Context, cedula string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}
