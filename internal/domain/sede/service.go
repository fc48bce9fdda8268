package sede

import "context"

type SedeService interface {
	ListSedes(ctx context.Context, filter SedeFilter) ([]SedeResponse, error)
	GetSede(ctx context.Context, id string) (SedeResponse, error)
	CreateSede(ctx context.Context, req CreateSedeRequest) (SedeResponse, error)
	UpdateSede(ctx context.Context, req UpdateSedeRequest) (SedeResponse, error)
	DeleteSede(ctx context.Context, id string) error
}
