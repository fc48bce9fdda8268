package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAdminOnly):
		Forbidden(w, err.Error())

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCedulaExists):
		Conflict(w, "Cedula already registered")
	case errors.Is(err, employee.ErrCedulaImmutable):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrEmployeeInUse):
		Conflict(w, "Employee has time records")

	// Sede
	case errors.Is(err, sede.ErrSedeNotFound):
		NotFound(w, "Sede not found")
	case errors.Is(err, sede.ErrSedeInUse):
		Conflict(w, "Sede is referenced by employees or records")

	// Time records
	case errors.Is(err, timerecord.ErrTimeRecordNotFound):
		NotFound(w, "Time record not found")

	// Notifications
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	case errors.Is(err, context.DeadlineExceeded):
		GatewayTimeout(w, "Request timed out")

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
