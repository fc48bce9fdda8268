package attendance

import (
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/validator"
)

type ListAttendanceQuery struct {
	timerecord.ListRecordsQuery

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (q *ListAttendanceQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if q.Page == 0 {
		q.Page = 1
	}

	if q.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceRecordResponse struct {
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Cedula       string  `json:"cedula"`
	SedeID       *string `json:"sedeId"`
	SedeName     *string `json:"sedeName"`
	Date         string  `json:"date"`
	TimeIn       *string `json:"timeIn"`
	TimeOut      *string `json:"timeOut"`
	Coordinates  *string `json:"coordinates"`
	Status       Status  `json:"status"`
}

func ToResponse(r AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Cedula:       r.Cedula,
		SedeID:       r.SedeID,
		SedeName:     r.SedeName,
		Date:         r.Date.Format("2006-01-02"),
		TimeIn:       r.TimeIn,
		TimeOut:      r.TimeOut,
		Coordinates:  r.Coordinates,
		Status:       r.Status(),
	}
}

type ListAttendanceResponse struct {
	TotalCount int64                      `json:"totalCount"`
	Page       int                        `json:"page"`
	Limit      int                        `json:"limit"`
	TotalPages int                        `json:"totalPages"`
	Showing    string                     `json:"showing"`
	Records    []AttendanceRecordResponse `json:"records"`
}
