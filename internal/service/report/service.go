package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/utils"
)

type ReportServiceImpl struct {
	recordRepo timerecord.TimeRecordRepository
	location   *time.Location
	now        func() time.Time
}

func NewReportService(recordRepo timerecord.TimeRecordRepository, location *time.Location) report.ReportService {
	return &ReportServiceImpl{
		recordRepo: recordRepo,
		location:   location,
		now:        time.Now,
	}
}

// ExportRecordsCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportRecordsCSV(ctx context.Context, query report.ExportRecordsQuery, w io.Writer) error {
	filter, err := query.ToFilter(s.location, s.now())
	if err != nil {
		return err
	}

	records, err := s.recordRepo.FindByDateRange(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get time records: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = report.CSVSeparator

	if err := cw.Write(report.CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(toRow(r)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func toRow(r timerecord.TimeRecord) []string {
	var name, cedula, sedeName, coords string
	if r.Employee != nil {
		name = r.Employee.FullName()
		cedula = r.Employee.Cedula
	}
	if r.Sede != nil {
		sedeName = r.Sede.Name
	}
	if r.Coordinates != nil {
		coords = *r.Coordinates
	}

	overtime := 0
	if r.OvertimeMin != nil {
		overtime = *r.OvertimeMin
	}

	return []string{
		name,
		cedula,
		sedeName,
		utils.FormatISO(r.Timestamp),
		string(r.RecordType),
		coords,
		strconv.Itoa(overtime),
	}
}
