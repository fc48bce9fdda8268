package timerecord

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/validator"
)

// CreateRecordRequest is a clock submission. The server assigns the timestamp.
type CreateRecordRequest struct {
	Cedula      string  `json:"cedula"`
	SedeID      *string `json:"sedeId,omitempty"`
	RecordType  string  `json:"recordType"`
	Coordinates *string `json:"coordinates,omitempty"`

	// Optional photo, set by the multipart handler
	Photo         io.Reader `json:"-"`
	PhotoFilename string    `json:"-"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Cedula = strings.TrimSpace(r.Cedula)
	r.RecordType = strings.ToLower(strings.TrimSpace(r.RecordType))

	if validator.IsEmpty(r.Cedula) {
		errs = append(errs, validator.ValidationError{
			Field:   "cedula",
			Message: "cedula is required",
		})
	}

	if validator.IsEmpty(r.RecordType) {
		errs = append(errs, validator.ValidationError{
			Field:   "recordType",
			Message: "recordType is required",
		})
	} else if !RecordType(r.RecordType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "recordType",
			Message: ErrInvalidRecordType.Error(),
		})
	}

	if r.SedeID != nil && validator.IsEmpty(*r.SedeID) {
		r.SedeID = nil
	}
	if r.Coordinates != nil && validator.IsEmpty(*r.Coordinates) {
		r.Coordinates = nil
	}

	if r.Photo != nil {
		ext := strings.ToLower(filepath.Ext(r.PhotoFilename))
		if !validator.IsInSlice(ext, []string{".jpg", ".jpeg", ".png"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: ErrInvalidPhotoType.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordFilter selects records with From <= timestamp <= To.
type RecordFilter struct {
	From   time.Time
	To     time.Time
	SedeID *string
	Search *string
}

// ListRecordsQuery holds the raw query string values of a records listing.
type ListRecordsQuery struct {
	DateFrom *string
	DateTo   *string
	SedeID   *string
	Search   *string
}

// ToFilter resolves the query into a RecordFilter. A bare date is a local
// calendar day in loc. Missing dateFrom means the Unix epoch, missing dateTo means now.
func (q ListRecordsQuery) ToFilter(loc *time.Location, now time.Time) (RecordFilter, error) {
	var errs validator.ValidationErrors

	filter := RecordFilter{
		From: time.Unix(0, 0).UTC(),
		To:   now,
	}

	if q.DateFrom != nil && !validator.IsEmpty(*q.DateFrom) {
		from, ok := validator.ParseDateBound(strings.TrimSpace(*q.DateFrom), loc, false)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dateFrom",
				Message: "dateFrom must be YYYY-MM-DD or RFC3339",
			})
		}
		filter.From = from
	}

	if q.DateTo != nil && !validator.IsEmpty(*q.DateTo) {
		to, ok := validator.ParseDateBound(strings.TrimSpace(*q.DateTo), loc, true)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dateTo",
				Message: "dateTo must be YYYY-MM-DD or RFC3339",
			})
		}
		filter.To = to
	}

	if len(errs) == 0 && filter.From.After(filter.To) {
		errs = append(errs, validator.ValidationError{
			Field:   "dateFrom",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if q.SedeID != nil && !validator.IsEmpty(*q.SedeID) {
		filter.SedeID = q.SedeID
	}
	if q.Search != nil && !validator.IsEmpty(*q.Search) {
		search := strings.TrimSpace(*q.Search)
		filter.Search = &search
	}

	if len(errs) > 0 {
		return RecordFilter{}, errs
	}

	return filter, nil
}

type EmployeeSummaryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Cedula   string `json:"cedula"`
}

type SedeSummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TimeRecordResponse struct {
	ID          string                   `json:"id"`
	EmployeeID  string                   `json:"employeeId"`
	SedeID      *string                  `json:"sedeId"`
	RecordType  string                   `json:"recordType"`
	Coordinates *string                  `json:"coordinates"`
	Latitude    *float64                 `json:"latitude"`
	Longitude   *float64                 `json:"longitude"`
	InSite      *bool                    `json:"inSite"`
	PhotoURL    *string                  `json:"photoUrl"`
	Timestamp   string                   `json:"timestamp"`
	OvertimeMin *int                     `json:"overtimeMin"`
	CreatedAt   string                   `json:"createdAt"`
	Employee    *EmployeeSummaryResponse `json:"employee,omitempty"`
	Sede        *SedeSummaryResponse     `json:"sede,omitempty"`
}

func ToResponse(r TimeRecord) TimeRecordResponse {
	resp := TimeRecordResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		SedeID:      r.SedeID,
		RecordType:  string(r.RecordType),
		Coordinates: r.Coordinates,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		InSite:      r.InSite,
		PhotoURL:    r.PhotoURL,
		Timestamp:   utils.FormatISO(r.Timestamp),
		OvertimeMin: r.OvertimeMin,
		CreatedAt:   utils.FormatISO(r.CreatedAt),
	}

	if r.Employee != nil {
		resp.Employee = &EmployeeSummaryResponse{
			ID:       r.Employee.ID,
			Name:     r.Employee.Name,
			LastName: r.Employee.LastName,
			Cedula:   r.Employee.Cedula,
		}
	}
	if r.Sede != nil {
		resp.Sede = &SedeSummaryResponse{
			ID:   r.Sede.ID,
			Name: r.Sede.Name,
		}
	}

	return resp
}
