package timerecord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/jornada-backend-go/internal/service/file"
)

type TimeRecordServiceImpl struct {
	db           database.Transactor
	recordRepo   timerecord.TimeRecordRepository
	employeeRepo employee.EmployeeRepository
	sedeRepo     sede.SedeRepository
	fileService  file.FileService
	notifier     notification.Service
	overtime     timerecord.OvertimeCalculator
	geoFence     utils.GeoFence
	location     *time.Location
	now          func() time.Time
}

type Option func(*TimeRecordServiceImpl)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *TimeRecordServiceImpl) { s.now = now }
}

func NewTimeRecordService(
	db database.Transactor,
	recordRepo timerecord.TimeRecordRepository,
	employeeRepo employee.EmployeeRepository,
	sedeRepo sede.SedeRepository,
	fileService file.FileService,
	notifier notification.Service,
	overtime timerecord.OvertimeCalculator,
	geoFence utils.GeoFence,
	location *time.Location,
	opts ...Option,
) timerecord.TimeRecordService {
	s := &TimeRecordServiceImpl{
		db:           db,
		recordRepo:   recordRepo,
		employeeRepo: employeeRepo,
		sedeRepo:     sedeRepo,
		fileService:  fileService,
		notifier:     notifier,
		overtime:     overtime,
		geoFence:     geoFence,
		location:     location,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRecord implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) CreateRecord(ctx context.Context, req timerecord.CreateRecordRequest) (timerecord.TimeRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByCedula(ctx, req.Cedula)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timerecord.TimeRecordResponse{}, employee.ErrEmployeeNotFound
		}
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to get employee by cedula: %w", err)
	}

	// An unknown sede is dropped, not rejected.
	var site *sede.Sede
	if req.SedeID != nil {
		found, err := s.sedeRepo.GetByID(ctx, *req.SedeID)
		switch {
		case err == nil:
			site = &found
		case errors.Is(err, sede.ErrSedeNotFound):
			slog.WarnContext(ctx, "time record references unknown sede", slog.String("sede_id", *req.SedeID))
		default:
			return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to get sede: %w", err)
		}
	}

	now := s.now()
	record := timerecord.TimeRecord{
		EmployeeID:  emp.ID,
		RecordType:  timerecord.RecordType(req.RecordType),
		Coordinates: req.Coordinates,
		Timestamp:   now,
		Employee: &timerecord.EmployeeSummary{
			ID:       emp.ID,
			Name:     emp.Name,
			LastName: emp.LastName,
			Cedula:   emp.Cedula,
		},
	}

	if site != nil {
		record.SedeID = &site.ID
		record.Sede = &timerecord.SedeSummary{ID: site.ID, Name: site.Name, Coordinates: site.Coordinates}
	}

	if req.Coordinates != nil {
		if point, ok := utils.ParseCoordinates(*req.Coordinates); ok {
			record.Latitude = &point.Latitude
			record.Longitude = &point.Longitude
		}
		if site != nil && site.Coordinates != nil {
			record.InSite = s.geoFence.IsWithin(*req.Coordinates, *site.Coordinates)
		}
	}

	if req.Photo != nil {
		photoURL, err := s.fileService.UploadRecordPhoto(ctx, emp.ID, utils.StartOfDay(now, s.location), req.Photo, req.PhotoFilename, req.RecordType)
		if err != nil {
			return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to upload record photo: %w", err)
		}
		record.PhotoURL = &photoURL
	}

	var created timerecord.TimeRecord
	err = s.db.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.recordRepo.Create(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to create time record: %w", err)
		}

		if record.RecordType != timerecord.RecordTypeSalida {
			return nil
		}

		entry, err := s.recordRepo.FindLastEntryForDay(txCtx, emp.ID, now)
		if err != nil {
			return fmt.Errorf("failed to find last entry: %w", err)
		}
		if entry == nil {
			return nil
		}

		minutes := s.overtime.CalculateOvertimeMinutes(entry.Timestamp, now)
		if err := s.recordRepo.SetOvertime(txCtx, created.ID, minutes); err != nil {
			return fmt.Errorf("failed to set overtime: %w", err)
		}
		created.OvertimeMin = &minutes
		return nil
	})
	if err != nil {
		if record.PhotoURL != nil {
			if delErr := s.fileService.DeleteByURL(context.WithoutCancel(ctx), *record.PhotoURL); delErr != nil {
				slog.WarnContext(ctx, "failed to remove orphaned record photo", slog.Any("error", delErr))
			}
		}
		return timerecord.TimeRecordResponse{}, err
	}

	created.Employee = record.Employee
	created.Sede = record.Sede

	if err := s.notifier.NotifyRecordCreated(ctx, created); err != nil {
		slog.WarnContext(ctx, "failed to queue record notification",
			slog.String("record_id", created.ID),
			slog.Any("error", err),
		)
	}

	slog.InfoContext(ctx, "time record created",
		slog.String("record_id", created.ID),
		slog.String("employee_id", emp.ID),
		slog.String("record_type", string(created.RecordType)),
	)

	return timerecord.ToResponse(created), nil
}

// ListRecords implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) ListRecords(ctx context.Context, query timerecord.ListRecordsQuery) ([]timerecord.TimeRecordResponse, error) {
	filter, err := query.ToFilter(s.location, s.now())
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.FindByDateRange(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, timerecord.ToResponse(r))
	}
	return responses, nil
}
