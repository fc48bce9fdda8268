package timerecord

import "time"

type RecordType string

const (
	RecordTypeEntrada RecordType = "entrada"
	RecordTypeSalida  RecordType = "salida"
)

func (t RecordType) IsValid() bool {
	return t == RecordTypeEntrada || t == RecordTypeSalida
}

// TimeRecord is one clock event. It is never updated after the transaction
// that created it, except for OvertimeMin being attached in that same transaction.
type TimeRecord struct {
	ID          string
	EmployeeID  string
	SedeID      *string
	RecordType  RecordType
	Coordinates *string
	Latitude    *float64
	Longitude   *float64
	InSite      *bool
	PhotoURL    *string
	Timestamp   time.Time
	OvertimeMin *int
	CreatedAt   time.Time

	// Joined for display
	Employee *EmployeeSummary
	Sede     *SedeSummary
}

type EmployeeSummary struct {
	ID       string
	Name     string
	LastName string
	Cedula   string
}

func (e EmployeeSummary) FullName() string {
	return e.Name + " " + e.LastName
}

type SedeSummary struct {
	ID          string
	Name        string
	Coordinates *string
}
