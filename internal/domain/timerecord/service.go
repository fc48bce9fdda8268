package timerecord

import "context"

type TimeRecordService interface {
	// CreateRecord registers one clock event for the employee owning the cedula.
	// The timestamp is always assigned by the server.
	CreateRecord(ctx context.Context, req CreateRecordRequest) (TimeRecordResponse, error)

	ListRecords(ctx context.Context, query ListRecordsQuery) ([]TimeRecordResponse, error)
}
