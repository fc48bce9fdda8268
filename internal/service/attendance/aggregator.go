package attendance

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/utils"
)

// TimeOfDayLayout is how entry and exit times are rendered.
const TimeOfDayLayout = "15:04"

// DayAggregator groups clock events by employee and local calendar day.
type DayAggregator struct {
	location *time.Location
}

func NewAggregator(location *time.Location) *DayAggregator {
	if location == nil {
		location = time.UTC
	}
	return &DayAggregator{location: location}
}

type groupKey struct {
	employeeID string
	day        string
}

// Group implements attendance.Aggregator. Within a group, later events of the
// same kind overwrite earlier ones in input order. The result is sorted by day
// descending, then employee name, then employee id.
func (a *DayAggregator) Group(records []timerecord.TimeRecord) []attendance.AttendanceRecord {
	groups := make(map[groupKey]*attendance.AttendanceRecord)
	order := make([]groupKey, 0)

	for _, r := range records {
		key := groupKey{employeeID: r.EmployeeID, day: utils.DayKey(r.Timestamp, a.location)}

		rec, ok := groups[key]
		if !ok {
			rec = a.seed(r)
			groups[key] = rec
			order = append(order, key)
		}

		clock := r.Timestamp.In(a.location).Format(TimeOfDayLayout)
		switch r.RecordType {
		case timerecord.RecordTypeEntrada:
			rec.TimeIn = &clock
			if rec.Coordinates == nil {
				rec.Coordinates = r.Coordinates
			}
		case timerecord.RecordTypeSalida:
			rec.TimeOut = &clock
		}
	}

	result := make([]attendance.AttendanceRecord, 0, len(order))
	for _, key := range order {
		result = append(result, *groups[key])
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		if result[i].EmployeeName != result[j].EmployeeName {
			return result[i].EmployeeName < result[j].EmployeeName
		}
		return result[i].EmployeeID < result[j].EmployeeID
	})

	return result
}

func (a *DayAggregator) seed(r timerecord.TimeRecord) *attendance.AttendanceRecord {
	rec := &attendance.AttendanceRecord{
		EmployeeID:  r.EmployeeID,
		SedeID:      r.SedeID,
		Date:        utils.StartOfDay(r.Timestamp, a.location),
		Coordinates: r.Coordinates,
	}
	if r.Employee != nil {
		rec.EmployeeName = r.Employee.FullName()
		rec.Cedula = r.Employee.Cedula
	}
	if r.Sede != nil {
		name := r.Sede.Name
		rec.SedeName = &name
	}
	return rec
}
