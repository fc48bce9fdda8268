package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	sedeRepo     sede.SedeRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	sedeRepo sede.SedeRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		sedeRepo:     sedeRepo,
	}
}

// ensureSede rejects references to sedes that do not exist.
func (s *EmployeeServiceImpl) ensureSede(ctx context.Context, sedeID *string) error {
	if sedeID == nil || *sedeID == "" {
		return nil
	}
	if _, err := s.sedeRepo.GetByID(ctx, *sedeID); err != nil {
		if errors.Is(err, sede.ErrSedeNotFound) {
			return sede.ErrSedeNotFound
		}
		return fmt.Errorf("failed to get sede: %w", err)
	}
	return nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByCedula(ctx, req.Cedula)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check cedula: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrCedulaExists
	}

	if err := s.ensureSede(ctx, req.SedeID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:     req.Name,
		LastName: req.LastName,
		Cedula:   req.Cedula,
		Email:    req.Email,
		Phone:    req.Phone,
		IsAdmin:  req.IsAdmin,
		SedeID:   req.SedeID,
	})
	if err != nil {
		if errors.Is(err, employee.ErrCedulaExists) {
			return employee.EmployeeResponse{}, employee.ErrCedulaExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.InfoContext(ctx, "employee created", slog.String("employee_id", created.ID))
	return employee.ToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Cedula != nil && *req.Cedula != current.Cedula {
		return employee.EmployeeResponse{}, employee.ErrCedulaImmutable
	}

	if err := s.ensureSede(ctx, req.SedeID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req.ID, req)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrEmployeeInUse) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.InfoContext(ctx, "employee deleted", slog.String("employee_id", id))
	return nil
}
