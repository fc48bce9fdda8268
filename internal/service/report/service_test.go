package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/validator"
)

var bogota = time.FixedZone("COT", -5*60*60)

type stubRecordRepo struct {
	timerecord.TimeRecordRepository
	records   []timerecord.TimeRecord
	gotFilter timerecord.RecordFilter
}

func (s *stubRecordRepo) FindByDateRange(ctx context.Context, filter timerecord.RecordFilter) ([]timerecord.TimeRecord, error) {
	s.gotFilter = filter
	return s.records, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestExportRecordsCSV_OneRowPerRecord(t *testing.T) {
	emp := &timerecord.EmployeeSummary{ID: "emp-1", Name: "Ana", LastName: "Gomez", Cedula: "11111111"}
	repo := &stubRecordRepo{records: []timerecord.TimeRecord{
		{
			ID: "2", EmployeeID: "emp-1", RecordType: timerecord.RecordTypeSalida,
			Timestamp:   time.Date(2025, 11, 17, 17, 30, 0, 0, bogota),
			Coordinates: strPtr("4.7110, -74.0721"),
			OvertimeMin: intPtr(90),
			Employee:    emp,
			Sede:        &timerecord.SedeSummary{ID: "sede-1", Name: "Principal"},
		},
		{
			ID: "1", EmployeeID: "emp-1", RecordType: timerecord.RecordTypeEntrada,
			Timestamp: time.Date(2025, 11, 17, 8, 0, 0, 0, bogota),
			Employee:  emp,
		},
	}}
	svc := NewReportService(repo, bogota)

	var buf bytes.Buffer
	query := report.ExportRecordsQuery{ListRecordsQuery: timerecord.ListRecordsQuery{
		DateFrom: strPtr("2025-11-17"),
		DateTo:   strPtr("2025-11-17"),
	}}
	require.NoError(t, svc.ExportRecordsCSV(context.Background(), query, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Empleado;Cedula;Sede;Fecha;Tipo;Coordenadas;HorasExtra", lines[0])
	assert.Equal(t, "Ana Gomez;11111111;Principal;2025-11-17T22:30:00.000Z;salida;4.7110, -74.0721;90", lines[1])
	assert.Equal(t, "Ana Gomez;11111111;;2025-11-17T13:00:00.000Z;entrada;;0", lines[2])

	assert.Equal(t, time.Date(2025, 11, 17, 0, 0, 0, 0, bogota), repo.gotFilter.From)
	assert.Equal(t, time.Date(2025, 11, 17, 23, 59, 59, int(999*time.Millisecond), bogota), repo.gotFilter.To)
}

func TestExportRecordsCSV_InvalidRange(t *testing.T) {
	svc := NewReportService(&stubRecordRepo{}, bogota)

	query := report.ExportRecordsQuery{ListRecordsQuery: timerecord.ListRecordsQuery{
		DateFrom: strPtr("2025-11-18"),
		DateTo:   strPtr("2025-11-17"),
	}}
	err := svc.ExportRecordsCSV(context.Background(), query, &bytes.Buffer{})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestExportRecordsQuery_Filename(t *testing.T) {
	now := time.Date(2025, 11, 18, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "registros-2025-11-17.csv", report.ExportRecordsQuery{}.Filename(now, bogota))
}
