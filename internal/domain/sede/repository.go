package sede

import "context"

type SedeRepository interface {
	// GetByID returns ErrSedeNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (Sede, error)
	List(ctx context.Context, filter SedeFilter) ([]Sede, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, newSede Sede) (Sede, error)
	Update(ctx context.Context, id string, req UpdateSedeRequest) (Sede, error)
	Delete(ctx context.Context, id string) error
}
