package attendance

import (
	"context"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
)

// Aggregator groups raw clock events into attendance records.
type Aggregator interface {
	Group(records []timerecord.TimeRecord) []AttendanceRecord
}

type AttendanceService interface {
	// ListAttendance aggregates the events of a window and pages the result.
	ListAttendance(ctx context.Context, query ListAttendanceQuery) (ListAttendanceResponse, error)
}
