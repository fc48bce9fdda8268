package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	attendancesvc "github.com/cmlabs-hris/jornada-backend-go/internal/service/attendance"
)

var bogota = time.FixedZone("COT", -5*60*60)

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	count int64
	err   error
}

func (s *stubEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return s.count, s.err
}

type stubSedeRepo struct {
	sede.SedeRepository
	count int64
}

func (s *stubSedeRepo) Count(ctx context.Context) (int64, error) {
	return s.count, nil
}

type stubRecordRepo struct {
	timerecord.TimeRecordRepository
	records []timerecord.TimeRecord

	gotFrom, gotTo time.Time
}

func (s *stubRecordRepo) FindByDateRange(ctx context.Context, filter timerecord.RecordFilter) ([]timerecord.TimeRecord, error) {
	s.gotFrom, s.gotTo = filter.From, filter.To
	var out []timerecord.TimeRecord
	for _, r := range s.records {
		if !r.Timestamp.Before(filter.From) && !r.Timestamp.After(filter.To) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRecordRepo) CountDistinctEmployees(ctx context.Context, from, to time.Time) (int64, error) {
	seen := make(map[string]struct{})
	for _, r := range s.records {
		if !r.Timestamp.Before(from) && !r.Timestamp.After(to) {
			seen[r.EmployeeID] = struct{}{}
		}
	}
	return int64(len(seen)), nil
}

func intPtr(n int) *int { return &n }

func record(id, employeeID string, kind timerecord.RecordType, ts time.Time, overtime *int) timerecord.TimeRecord {
	return timerecord.TimeRecord{
		ID:          id,
		EmployeeID:  employeeID,
		RecordType:  kind,
		Timestamp:   ts,
		OvertimeMin: overtime,
		Employee:    &timerecord.EmployeeSummary{ID: employeeID, Name: "Emp", LastName: employeeID, Cedula: "c-" + employeeID},
	}
}

func newService(records []timerecord.TimeRecord, now time.Time) (*stubRecordRepo, *DashboardServiceImpl) {
	recordRepo := &stubRecordRepo{records: records}
	svc := NewDashboardService(
		&stubEmployeeRepo{count: 12},
		&stubSedeRepo{count: 3},
		recordRepo,
		attendancesvc.NewAggregator(bogota),
		480,
		bogota,
		WithClock(func() time.Time { return now }),
	)
	return recordRepo, svc.(*DashboardServiceImpl)
}

func TestGetSummary_EntryAndExitScenario(t *testing.T) {
	now := time.Date(2025, 11, 17, 17, 31, 0, 0, bogota)
	records := []timerecord.TimeRecord{
		record("2", "emp-1", timerecord.RecordTypeSalida, time.Date(2025, 11, 17, 17, 30, 0, 0, bogota), intPtr(90)),
		record("1", "emp-1", timerecord.RecordTypeEntrada, time.Date(2025, 11, 17, 8, 0, 0, 0, bogota), nil),
		record("0", "emp-2", timerecord.RecordTypeEntrada, time.Date(2025, 11, 16, 8, 0, 0, 0, bogota), nil),
	}
	recordRepo, svc := newService(records, now)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), summary.TotalEmployees)
	assert.Equal(t, int64(3), summary.SedesCount)
	assert.Equal(t, int64(1), summary.ActiveToday)
	// (90 / 2 + 480) / 60
	assert.InDelta(t, 8.75, summary.AverageHours, 1e-9)
	assert.Equal(t, "2025-11-17", summary.Date)

	assert.Equal(t, time.Date(2025, 11, 17, 0, 0, 0, 0, bogota), recordRepo.gotFrom)
	assert.Equal(t, time.Date(2025, 11, 17, 23, 59, 59, int(999*time.Millisecond), bogota), recordRepo.gotTo)
}

func TestGetSummary_AverageHoursIsNotRounded(t *testing.T) {
	now := time.Date(2025, 11, 17, 16, 10, 0, 0, bogota)
	records := []timerecord.TimeRecord{
		record("2", "emp-1", timerecord.RecordTypeSalida, time.Date(2025, 11, 17, 16, 7, 0, 0, bogota), intPtr(7)),
		record("1", "emp-1", timerecord.RecordTypeEntrada, time.Date(2025, 11, 17, 8, 0, 0, 0, bogota), nil),
	}
	_, svc := newService(records, now)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	want := (7.0/2 + 480) / 60
	assert.Equal(t, want, summary.AverageHours)
	assert.NotEqual(t, 8.06, summary.AverageHours)
}

func TestGetSummary_NoRecords(t *testing.T) {
	_, svc := newService(nil, time.Date(2025, 11, 17, 9, 0, 0, 0, bogota))

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.ActiveToday)
	assert.Zero(t, summary.AverageHours)
}

func TestGetSummary_PropagatesErrors(t *testing.T) {
	svc := NewDashboardService(
		&stubEmployeeRepo{err: errors.New("db down")},
		&stubSedeRepo{},
		&stubRecordRepo{},
		attendancesvc.NewAggregator(bogota),
		480,
		bogota,
	)

	_, err := svc.GetSummary(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestGetToday_CapsPanel(t *testing.T) {
	now := time.Date(2025, 11, 17, 12, 0, 0, 0, bogota)
	var records []timerecord.TimeRecord
	for i := 0; i < TodayPanelSize+3; i++ {
		id := string(rune('a' + i))
		records = append(records, record(id, "emp-"+id, timerecord.RecordTypeEntrada, now.Add(-time.Duration(i)*time.Minute), nil))
	}
	_, svc := newService(records, now)

	today, err := svc.GetToday(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-11-17", today.Date)
	require.Len(t, today.Records, TodayPanelSize)
	for _, r := range today.Records {
		assert.Equal(t, attendance.StatusEnProgreso, r.Status)
		assert.Equal(t, "2025-11-17", r.Date)
	}
}
