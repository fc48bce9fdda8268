package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/database"
)

// SeededData holds what a bootstrap run created.
type SeededData struct {
	SedeIDs map[string]string // name -> id
	AdminID string
}

func newSeededData() *SeededData {
	return &SeededData{SedeIDs: make(map[string]string)}
}

type Seeder struct {
	db           database.Transactor
	employeeRepo employee.EmployeeRepository
	sedeRepo     sede.SedeRepository
	admin        AdminDefaults
}

func NewSeeder(db database.Transactor, employeeRepo employee.EmployeeRepository, sedeRepo sede.SedeRepository, admin AdminDefaults) *Seeder {
	return &Seeder{
		db:           db,
		employeeRepo: employeeRepo,
		sedeRepo:     sedeRepo,
		admin:        admin,
	}
}

// SeedIfEmpty creates the default sedes and an administrator when no employee
// exists yet. It returns nil data when the database was already populated.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (*SeededData, error) {
	count, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		slog.DebugContext(ctx, "Skipping seed, employees already present", "count", count)
		return nil, nil
	}

	var seeded *SeededData
	err = s.db.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		seeded, err = s.seedDefaultData(txCtx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return seeded, nil
}

func (s *Seeder) seedDefaultData(ctx context.Context) (*SeededData, error) {
	seeded := newSeededData()

	// 1. Sedes, reusing any that already exist by name.
	existing, err := s.sedeRepo.List(ctx, sede.SedeFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sedes: %w", err)
	}
	for _, se := range existing {
		seeded.SedeIDs[se.Name] = se.ID
	}

	for _, def := range GetDefaultSedes() {
		if _, ok := seeded.SedeIDs[def.Name]; ok {
			continue
		}
		created, err := s.sedeRepo.Create(ctx, def)
		if err != nil {
			return nil, fmt.Errorf("failed to create default sede %q: %w", def.Name, err)
		}
		seeded.SedeIDs[created.Name] = created.ID
	}
	slog.InfoContext(ctx, "Seeded default sedes", "count", len(seeded.SedeIDs))

	// 2. Administrator
	admin, err := s.employeeRepo.Create(ctx, GetDefaultAdmin(s.admin, seeded.SedeIDs[MainSedeName]))
	if err != nil {
		return nil, fmt.Errorf("failed to create admin employee: %w", err)
	}
	seeded.AdminID = admin.ID
	slog.InfoContext(ctx, "Created admin employee", "employee_id", admin.ID, "cedula", admin.Cedula)

	return seeded, nil
}
