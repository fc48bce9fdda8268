package report

import (
	"context"
	"io"
)

type ReportService interface {
	// ExportRecordsCSV writes one row per raw record in range to w.
	ExportRecordsCSV(ctx context.Context, query ExportRecordsQuery, w io.Writer) error
}
