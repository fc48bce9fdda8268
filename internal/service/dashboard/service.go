package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/utils"
)

// TodayPanelSize caps the records returned by GetToday.
const TodayPanelSize = 8

type DashboardServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	sedeRepo        sede.SedeRepository
	recordRepo      timerecord.TimeRecordRepository
	aggregator      attendance.Aggregator
	standardMinutes int
	location        *time.Location
	now             func() time.Time
}

type Option func(*DashboardServiceImpl)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *DashboardServiceImpl) {
		s.now = now
	}
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	sedeRepo sede.SedeRepository,
	recordRepo timerecord.TimeRecordRepository,
	aggregator attendance.Aggregator,
	standardMinutes int,
	location *time.Location,
	opts ...Option,
) dashboard.DashboardService {
	s := &DashboardServiceImpl{
		employeeRepo:    employeeRepo,
		sedeRepo:        sedeRepo,
		recordRepo:      recordRepo,
		aggregator:      aggregator,
		standardMinutes: standardMinutes,
		location:        location,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetSummary runs one query per counter in parallel.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.SummaryResponse, error) {
	now := s.now()
	from, to := utils.DayBounds(now, s.location)

	var (
		totalEmployees int64
		sedesCount     int64
		activeToday    int64
		averageHours   float64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.employeeRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		totalEmployees = n
		return nil
	})

	g.Go(func() error {
		n, err := s.sedeRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count sedes: %w", err)
		}
		sedesCount = n
		return nil
	})

	g.Go(func() error {
		n, err := s.recordRepo.CountDistinctEmployees(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("failed to count active employees: %w", err)
		}
		activeToday = n
		return nil
	})

	g.Go(func() error {
		records, err := s.recordRepo.FindByDateRange(gCtx, timerecord.RecordFilter{From: from, To: to})
		if err != nil {
			return fmt.Errorf("failed to list today's records: %w", err)
		}
		averageHours = s.averageHours(records)
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.SummaryResponse{}, err
	}

	return dashboard.SummaryResponse{
		TotalEmployees: totalEmployees,
		ActiveToday:    activeToday,
		SedesCount:     sedesCount,
		AverageHours:   averageHours,
		Date:           utils.DayKey(now, s.location),
	}, nil
}

// averageHours averages over records, not employees. Records without
// overtime count as zero.
func (s *DashboardServiceImpl) averageHours(records []timerecord.TimeRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	var total int
	for _, r := range records {
		if r.OvertimeMin != nil {
			total += *r.OvertimeMin
		}
	}

	minutes := float64(total)/float64(len(records)) + float64(s.standardMinutes)
	return minutes / 60
}

// GetToday implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetToday(ctx context.Context) (dashboard.TodayResponse, error) {
	now := s.now()
	from, to := utils.DayBounds(now, s.location)

	records, err := s.recordRepo.FindByDateRange(ctx, timerecord.RecordFilter{From: from, To: to})
	if err != nil {
		return dashboard.TodayResponse{}, fmt.Errorf("failed to list today's records: %w", err)
	}

	grouped := s.aggregator.Group(records)
	if len(grouped) > TodayPanelSize {
		grouped = grouped[:TodayPanelSize]
	}

	responses := make([]attendance.AttendanceRecordResponse, 0, len(grouped))
	for _, rec := range grouped {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return dashboard.TodayResponse{
		Date:    utils.DayKey(now, s.location),
		Records: responses,
	}, nil
}
