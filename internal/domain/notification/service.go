package notification

import (
	"context"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
)

// Channel delivers a notification to one sink.
type Channel interface {
	Name() string
	Send(ctx context.Context, n Notification) error
}

// Service dispatches notifications in the background. Delivery failures are
// logged, never returned to the caller that triggered them.
type Service interface {
	NotifyRecordCreated(ctx context.Context, record timerecord.TimeRecord) error

	// Stop delivers what is still queued and stops the workers.
	Stop()
}

// InboxService reads and acknowledges stored notifications. All
// administrators share one inbox.
type InboxService interface {
	List(ctx context.Context, query ListNotificationsQuery) (ListNotificationsResponse, error)
	UnreadCount(ctx context.Context) (UnreadCountResponse, error)
	MarkAsRead(ctx context.Context, req MarkAsReadRequest) (UnreadCountResponse, error)
	MarkAllAsRead(ctx context.Context) (UnreadCountResponse, error)
}
