package notification

import (
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/utils"
)

type NotificationType string

const (
	TypeRecordCreated NotificationType = "time_record.created"
)

// Notification is one message handed to a delivery channel.
type Notification struct {
	ID        string                 `json:"id"`
	Type      NotificationType       `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt time.Time              `json:"createdAt"`

	// Inbox state, only meaningful for stored notifications.
	IsRead bool       `json:"isRead,omitempty"`
	ReadAt *time.Time `json:"readAt,omitempty"`
}

// RecordCreatedData is the payload of a TypeRecordCreated notification.
func RecordCreatedData(r timerecord.TimeRecord) map[string]interface{} {
	data := map[string]interface{}{
		"recordId":    r.ID,
		"employeeId":  r.EmployeeID,
		"recordType":  string(r.RecordType),
		"timestamp":   utils.FormatISO(r.Timestamp),
		"sedeId":      r.SedeID,
		"inSite":      r.InSite,
		"overtimeMin": r.OvertimeMin,
	}
	if r.Employee != nil {
		data["employeeName"] = r.Employee.FullName()
		data["cedula"] = r.Employee.Cedula
	}
	return data
}
