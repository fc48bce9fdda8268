package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/jornada-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// ExportCSV handles GET /reports/csv
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	location      *time.Location
}

func NewReportHandler(reportService report.ReportService, location *time.Location) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		location:      location,
	}
}

// ExportCSV buffers the export so failures still get a JSON error response.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	query := report.ExportRecordsQuery{ListRecordsQuery: recordsQuery(r)}

	var buf bytes.Buffer
	if err := h.reportService.ExportRecordsCSV(r.Context(), query, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, query.Filename(time.Now(), h.location)))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(r.Context(), "failed to write csv export", "error", err)
	}
}
