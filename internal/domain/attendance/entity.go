package attendance

import "time"

type Status string

const (
	StatusCompleto   Status = "Completo"
	StatusEnProgreso Status = "En progreso"
	StatusPendiente  Status = "Pendiente"
)

// AttendanceRecord is the per employee, per local day view rebuilt from clock
// events on every read. It is never stored.
type AttendanceRecord struct {
	EmployeeID   string
	EmployeeName string
	Cedula       string
	SedeID       *string
	SedeName     *string
	// Date is local midnight of the day.
	Date        time.Time
	TimeIn      *string
	TimeOut     *string
	Coordinates *string
}

func (r AttendanceRecord) Status() Status {
	switch {
	case r.TimeIn != nil && r.TimeOut != nil:
		return StatusCompleto
	case r.TimeIn != nil:
		return StatusEnProgreso
	default:
		return StatusPendiente
	}
}
