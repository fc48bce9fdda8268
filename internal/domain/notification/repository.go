package notification

import "context"

type ListFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

type Repository interface {
	Create(ctx context.Context, n Notification) error

	// List returns notifications newest first plus the total matching the filter.
	List(ctx context.Context, filter ListFilter) ([]Notification, int64, error)
	UnreadCount(ctx context.Context) (int64, error)

	// MarkAsRead returns ErrNotificationNotFound when none of ids exist.
	MarkAsRead(ctx context.Context, ids []string) error
	MarkAllAsRead(ctx context.Context) error
}
