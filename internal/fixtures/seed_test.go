package fixtures

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
)

type passthroughTx struct{ calls int }

func (p *passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	count   int64
	created []employee.Employee
	err     error
}

func (s *stubEmployeeRepo) Count(ctx context.Context) (int64, error) { return s.count, nil }

func (s *stubEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if s.err != nil {
		return employee.Employee{}, s.err
	}
	e.ID = fmt.Sprintf("emp-%d", len(s.created)+1)
	s.created = append(s.created, e)
	return e, nil
}

type stubSedeRepo struct {
	sede.SedeRepository
	existing []sede.Sede
	created  []sede.Sede
}

func (s *stubSedeRepo) List(ctx context.Context, filter sede.SedeFilter) ([]sede.Sede, error) {
	return s.existing, nil
}

func (s *stubSedeRepo) Create(ctx context.Context, se sede.Sede) (sede.Sede, error) {
	se.ID = fmt.Sprintf("sede-%d", len(s.created)+1)
	s.created = append(s.created, se)
	return se, nil
}

var testAdmin = AdminDefaults{Cedula: "12345678", Name: "Admin", LastName: "Sistema"}

func TestSeedIfEmpty_CreatesSedesAndAdmin(t *testing.T) {
	tx := &passthroughTx{}
	employees := &stubEmployeeRepo{}
	sedes := &stubSedeRepo{}

	seeded, err := NewSeeder(tx, employees, sedes, testAdmin).SeedIfEmpty(context.Background())
	require.NoError(t, err)
	require.NotNil(t, seeded)

	assert.Equal(t, 1, tx.calls)
	require.Len(t, sedes.created, 2)
	assert.Equal(t, MainSedeName, sedes.created[0].Name)
	assert.Equal(t, "6.2442, -75.5812", *sedes.created[0].Coordinates)
	assert.True(t, sedes.created[1].IsActive)

	require.Len(t, employees.created, 1)
	admin := employees.created[0]
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "12345678", admin.Cedula)
	require.NotNil(t, admin.SedeID)
	assert.Equal(t, "sede-1", *admin.SedeID)
	assert.Equal(t, "emp-1", seeded.AdminID)
}

func TestSeedIfEmpty_SkipsPopulatedDatabase(t *testing.T) {
	tx := &passthroughTx{}
	employees := &stubEmployeeRepo{count: 3}
	sedes := &stubSedeRepo{}

	seeded, err := NewSeeder(tx, employees, sedes, testAdmin).SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.Nil(t, seeded)
	assert.Zero(t, tx.calls)
	assert.Empty(t, sedes.created)
	assert.Empty(t, employees.created)
}

func TestSeedIfEmpty_ReusesExistingSedes(t *testing.T) {
	employees := &stubEmployeeRepo{}
	sedes := &stubSedeRepo{existing: []sede.Sede{{ID: "existing", Name: MainSedeName}}}

	seeded, err := NewSeeder(&passthroughTx{}, employees, sedes, testAdmin).SeedIfEmpty(context.Background())
	require.NoError(t, err)

	require.Len(t, sedes.created, 1)
	assert.Equal(t, "Sede Norte", sedes.created[0].Name)
	assert.Equal(t, "existing", seeded.SedeIDs[MainSedeName])
	assert.Equal(t, "existing", *employees.created[0].SedeID)
}

func TestSeedIfEmpty_AdminFailureAborts(t *testing.T) {
	employees := &stubEmployeeRepo{err: errors.New("insert failed")}

	seeded, err := NewSeeder(&passthroughTx{}, employees, &stubSedeRepo{}, testAdmin).SeedIfEmpty(context.Background())
	assert.Error(t, err)
	assert.Nil(t, seeded)
}

func TestGetDefaultAdmin_WithoutSede(t *testing.T) {
	admin := GetDefaultAdmin(testAdmin, "")
	assert.Nil(t, admin.SedeID)
	assert.True(t, admin.IsAdmin)
}
