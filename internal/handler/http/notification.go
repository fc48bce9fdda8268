package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/jornada-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
	MarkAllAsRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	inboxService notification.InboxService
}

func NewNotificationHandler(inboxService notification.InboxService) NotificationHandler {
	return &notificationHandlerImpl{inboxService: inboxService}
}

// List implements NotificationHandler. ?unread=true limits to unread entries.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unread"))

	result, err := h.inboxService.List(r.Context(), notification.ListNotificationsQuery{
		UnreadOnly: unreadOnly,
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UnreadCount implements NotificationHandler.
func (h *notificationHandlerImpl) UnreadCount(w http.ResponseWriter, r *http.Request) {
	result, err := h.inboxService.UnreadCount(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// MarkAsRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	var req notification.MarkAsReadRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Warn("Invalid mark-as-read body", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.inboxService.MarkAsRead(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notifications marked as read", result)
}

// MarkAllAsRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	result, err := h.inboxService.MarkAllAsRead(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "All notifications marked as read", result)
}
