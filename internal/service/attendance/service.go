package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
)

type AttendanceServiceImpl struct {
	timerecord.TimeRecordRepository
	aggregator attendance.Aggregator
	location   *time.Location
	now        func() time.Time
}

func NewAttendanceService(
	recordRepo timerecord.TimeRecordRepository,
	aggregator attendance.Aggregator,
	location *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		TimeRecordRepository: recordRepo,
		aggregator:           aggregator,
		location:             location,
		now:                  time.Now,
	}
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, query attendance.ListAttendanceQuery) (attendance.ListAttendanceResponse, error) {
	if err := query.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	filter, err := query.ToFilter(a.location, a.now())
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := a.FindByDateRange(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list time records: %w", err)
	}

	grouped := a.aggregator.Group(records)
	total := int64(len(grouped))

	start := min((query.Page-1)*query.Limit, len(grouped))
	end := min(start+query.Limit, len(grouped))

	responses := make([]attendance.AttendanceRecordResponse, 0, end-start)
	for _, rec := range grouped[start:end] {
		responses = append(responses, attendance.ToResponse(rec))
	}

	totalPages := int(math.Ceil(float64(total) / float64(query.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", start+1, end, total)
	if total == 0 || start == end {
		showing = fmt.Sprintf("0 of %d", total)
	}

	return attendance.ListAttendanceResponse{
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Records:    responses,
	}, nil
}
