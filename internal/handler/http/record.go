package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/jornada-backend-go/internal/handler/http/response"
)

// maxPhotoFormSize bounds multipart clock submissions.
const maxPhotoFormSize = 10 << 20

type RecordHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	timeRecordService timerecord.TimeRecordService
	attendanceService attendance.AttendanceService
}

func NewRecordHandler(timeRecordService timerecord.TimeRecordService, attendanceService attendance.AttendanceService) RecordHandler {
	return &recordHandlerImpl{
		timeRecordService: timeRecordService,
		attendanceService: attendanceService,
	}
}

// Create implements RecordHandler. Accepts JSON, or multipart with an optional
// "photo" file and either a "data" JSON field or plain form fields.
func (h *recordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timerecord.CreateRecordRequest

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxPhotoFormSize); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		if dataJSON := r.FormValue("data"); dataJSON != "" {
			if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
				slog.Error("Failed to unmarshal JSON data", "error", err)
				response.BadRequest(w, "Invalid request format", nil)
				return
			}
		} else {
			req.Cedula = r.FormValue("cedula")
			req.RecordType = r.FormValue("recordType")
			if v := r.FormValue("sedeId"); v != "" {
				req.SedeID = &v
			}
			if v := r.FormValue("coordinates"); v != "" {
				req.Coordinates = &v
			}
		}

		file, fileHeader, err := r.FormFile("photo")
		if err == nil {
			defer file.Close()
			req.Photo = file
			req.PhotoFilename = fileHeader.Filename
		}
	} else {
		if err := decodeJSON(r, &req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.timeRecordService.CreateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Record created successfully", result)
}

// List implements RecordHandler.
func (h *recordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.timeRecordService.ListRecords(r.Context(), recordsQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListAttendance implements RecordHandler.
func (h *recordHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	query := attendance.ListAttendanceQuery{
		ListRecordsQuery: recordsQuery(r),
		Page:             queryInt(r, "page"),
		Limit:            queryInt(r, "limit"),
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
		Showing:    result.Showing,
	})
}
