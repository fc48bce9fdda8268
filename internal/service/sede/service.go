package sede

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
)

type SedeServiceImpl struct {
	sedeRepo sede.SedeRepository
}

func NewSedeService(sedeRepo sede.SedeRepository) sede.SedeService {
	return &SedeServiceImpl{sedeRepo: sedeRepo}
}

func (s *SedeServiceImpl) ListSedes(ctx context.Context, filter sede.SedeFilter) ([]sede.SedeResponse, error) {
	sedes, err := s.sedeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sedes: %w", err)
	}

	responses := make([]sede.SedeResponse, 0, len(sedes))
	for _, item := range sedes {
		responses = append(responses, sede.ToResponse(item))
	}
	return responses, nil
}

func (s *SedeServiceImpl) GetSede(ctx context.Context, id string) (sede.SedeResponse, error) {
	found, err := s.sedeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sede.ErrSedeNotFound) {
			return sede.SedeResponse{}, sede.ErrSedeNotFound
		}
		return sede.SedeResponse{}, fmt.Errorf("failed to get sede: %w", err)
	}
	return sede.ToResponse(found), nil
}

func (s *SedeServiceImpl) CreateSede(ctx context.Context, req sede.CreateSedeRequest) (sede.SedeResponse, error) {
	if err := req.Validate(); err != nil {
		return sede.SedeResponse{}, err
	}

	created, err := s.sedeRepo.Create(ctx, sede.Sede{
		Name:        req.Name,
		Address:     req.Address,
		Coordinates: req.Coordinates,
		IsActive:    req.Active(),
	})
	if err != nil {
		return sede.SedeResponse{}, fmt.Errorf("failed to create sede: %w", err)
	}
	return sede.ToResponse(created), nil
}

func (s *SedeServiceImpl) UpdateSede(ctx context.Context, req sede.UpdateSedeRequest) (sede.SedeResponse, error) {
	if err := req.Validate(); err != nil {
		return sede.SedeResponse{}, err
	}

	updated, err := s.sedeRepo.Update(ctx, req.ID, req)
	if err != nil {
		if errors.Is(err, sede.ErrSedeNotFound) {
			return sede.SedeResponse{}, sede.ErrSedeNotFound
		}
		return sede.SedeResponse{}, fmt.Errorf("failed to update sede: %w", err)
	}
	return sede.ToResponse(updated), nil
}

func (s *SedeServiceImpl) DeleteSede(ctx context.Context, id string) error {
	if err := s.sedeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sede.ErrSedeNotFound) || errors.Is(err, sede.ErrSedeInUse) {
			return err
		}
		return fmt.Errorf("failed to delete sede: %w", err)
	}
	return nil
}
