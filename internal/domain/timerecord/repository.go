package timerecord

import (
	"context"
	"time"
)

// TimeRecordRepository is the append-only event store.
type TimeRecordRepository interface {
	// Create appends a record and returns it with its generated id.
	Create(ctx context.Context, record TimeRecord) (TimeRecord, error)

	GetByID(ctx context.Context, id string) (TimeRecord, error)

	// FindByDateRange returns records with From <= timestamp <= To, newest first,
	// with employee and sede joined.
	FindByDateRange(ctx context.Context, filter RecordFilter) ([]TimeRecord, error)

	// FindLastEntryForDay returns the most recent entrada of the employee within
	// the local calendar day containing day, or nil when there is none.
	FindLastEntryForDay(ctx context.Context, employeeID string, day time.Time) (*TimeRecord, error)

	SetOvertime(ctx context.Context, id string, minutes int) error

	// CountDistinctEmployees counts employees with at least one record in [from, to].
	CountDistinctEmployees(ctx context.Context, from, to time.Time) (int64, error)
}

// OvertimeCalculator computes minutes worked beyond the standard shift.
type OvertimeCalculator interface {
	CalculateOvertimeMinutes(entry, exit time.Time) int
}
