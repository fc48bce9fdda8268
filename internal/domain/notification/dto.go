package notification

import (
	"strings"

	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/validator"
)

type ListNotificationsQuery struct {
	UnreadOnly bool `json:"unreadOnly"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (q *ListNotificationsQuery) Validate() error {
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

type MarkAsReadRequest struct {
	IDs []string `json:"ids"`
}

func (r *MarkAsReadRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "at least one id is required",
		})
	}
	for i, id := range r.IDs {
		r.IDs[i] = strings.TrimSpace(id)
		if !validator.IsValidUUID(r.IDs[i]) {
			errs = append(errs, validator.ValidationError{
				Field:   "ids",
				Message: "invalid id: " + id,
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NotificationResponse struct {
	ID        string                 `json:"id"`
	Type      NotificationType       `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"isRead"`
	ReadAt    *string                `json:"readAt"`
	CreatedAt string                 `json:"createdAt"`
}

func ToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: utils.FormatISO(n.CreatedAt),
	}
	if n.ReadAt != nil {
		readAt := utils.FormatISO(*n.ReadAt)
		resp.ReadAt = &readAt
	}
	return resp
}

type ListNotificationsResponse struct {
	TotalCount    int64                  `json:"totalCount"`
	UnreadCount   int64                  `json:"unreadCount"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"totalPages"`
	Notifications []NotificationResponse `json:"notifications"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}
