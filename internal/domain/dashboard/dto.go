package dashboard

import "github.com/cmlabs-hris/jornada-backend-go/internal/domain/attendance"

// SummaryResponse backs the dashboard counters.
type SummaryResponse struct {
	TotalEmployees int64 `json:"totalEmployees"`
	ActiveToday    int64 `json:"activeToday"` // distinct employees with a record today
	SedesCount     int64 `json:"sedesCount"`
	// AverageHours is (mean overtime per record today + standard shift) in hours.
	AverageHours float64 `json:"averageHours"`
	Date         string  `json:"date"` // Format: "YYYY-MM-DD"
}

// TodayResponse is today's attendance, aggregated per employee.
type TodayResponse struct {
	Date    string                                `json:"date"`
	Records []attendance.AttendanceRecordResponse `json:"records"`
}
