package timerecord

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
)

type mockRecordRepo struct{ mock.Mock }

func (m *mockRecordRepo) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(timerecord.TimeRecord), args.Error(1)
}

func (m *mockRecordRepo) GetByID(ctx context.Context, id string) (timerecord.TimeRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(timerecord.TimeRecord), args.Error(1)
}

func (m *mockRecordRepo) FindByDateRange(ctx context.Context, filter timerecord.RecordFilter) ([]timerecord.TimeRecord, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]timerecord.TimeRecord), args.Error(1)
}

func (m *mockRecordRepo) FindLastEntryForDay(ctx context.Context, employeeID string, day time.Time) (*timerecord.TimeRecord, error) {
	args := m.Called(ctx, employeeID, day)
	rec, _ := args.Get(0).(*timerecord.TimeRecord)
	return rec, args.Error(1)
}

func (m *mockRecordRepo) SetOvertime(ctx context.Context, id string, minutes int) error {
	return m.Called(ctx, id, minutes).Error(0)
}

func (m *mockRecordRepo) CountDistinctEmployees(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type mockEmployeeRepo struct{ mock.Mock }

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) GetByCedula(ctx context.Context, cedula string) (employee.Employee, error) {
	args := m.Called(ctx, cedula)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]employee.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEmployeeRepo) ExistsByCedula(ctx context.Context, cedula string) (bool, error) {
	args := m.Called(ctx, cedula)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	args := m.Called(ctx, newEmployee)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockSedeRepo struct{ mock.Mock }

func (m *mockSedeRepo) GetByID(ctx context.Context, id string) (sede.Sede, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sede.Sede), args.Error(1)
}

func (m *mockSedeRepo) List(ctx context.Context, filter sede.SedeFilter) ([]sede.Sede, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sede.Sede), args.Error(1)
}

func (m *mockSedeRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSedeRepo) Create(ctx context.Context, newSede sede.Sede) (sede.Sede, error) {
	args := m.Called(ctx, newSede)
	return args.Get(0).(sede.Sede), args.Error(1)
}

func (m *mockSedeRepo) Update(ctx context.Context, id string, req sede.UpdateSedeRequest) (sede.Sede, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(sede.Sede), args.Error(1)
}

func (m *mockSedeRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockFileService struct{ mock.Mock }

func (m *mockFileService) UploadRecordPhoto(ctx context.Context, employeeID string, day time.Time, file io.Reader, filename string, recordType string) (string, error) {
	args := m.Called(ctx, employeeID, day, file, filename, recordType)
	return args.String(0), args.Error(1)
}

func (m *mockFileService) DeleteByURL(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) NotifyRecordCreated(ctx context.Context, record timerecord.TimeRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockNotifier) Stop() { m.Called() }

// passthroughTx runs fn without a database and counts calls.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}
