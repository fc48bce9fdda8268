package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/utils"
)

// CSVHeader is the first line of every records export.
var CSVHeader = []string{"Empleado", "Cedula", "Sede", "Fecha", "Tipo", "Coordenadas", "HorasExtra"}

// CSVSeparator separates columns in records exports.
const CSVSeparator = ';'

type ExportRecordsQuery struct {
	timerecord.ListRecordsQuery
}

// Filename names the attachment after the export day in loc.
func (q ExportRecordsQuery) Filename(now time.Time, loc *time.Location) string {
	return fmt.Sprintf("registros-%s.csv", utils.DayKey(now, loc))
}
