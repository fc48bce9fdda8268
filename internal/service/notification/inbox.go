package notification

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/notification"
)

type InboxServiceImpl struct {
	repo notification.Repository
}

func NewInboxService(repo notification.Repository) notification.InboxService {
	return &InboxServiceImpl{repo: repo}
}

// List implements notification.InboxService.
func (s *InboxServiceImpl) List(ctx context.Context, query notification.ListNotificationsQuery) (notification.ListNotificationsResponse, error) {
	if err := query.Validate(); err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	items, total, err := s.repo.List(ctx, notification.ListFilter{
		UnreadOnly: query.UnreadOnly,
		Limit:      query.Limit,
		Offset:     (query.Page - 1) * query.Limit,
	})
	if err != nil {
		return notification.ListNotificationsResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.repo.UnreadCount(ctx)
	if err != nil {
		return notification.ListNotificationsResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, notification.ToResponse(n))
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return notification.ListNotificationsResponse{
		TotalCount:    total,
		UnreadCount:   unread,
		Page:          query.Page,
		Limit:         query.Limit,
		TotalPages:    totalPages,
		Notifications: responses,
	}, nil
}

// UnreadCount implements notification.InboxService.
func (s *InboxServiceImpl) UnreadCount(ctx context.Context) (notification.UnreadCountResponse, error) {
	count, err := s.repo.UnreadCount(ctx)
	if err != nil {
		return notification.UnreadCountResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return notification.UnreadCountResponse{UnreadCount: count}, nil
}

// MarkAsRead implements notification.InboxService.
func (s *InboxServiceImpl) MarkAsRead(ctx context.Context, req notification.MarkAsReadRequest) (notification.UnreadCountResponse, error) {
	if err := req.Validate(); err != nil {
		return notification.UnreadCountResponse{}, err
	}
	if err := s.repo.MarkAsRead(ctx, req.IDs); err != nil {
		return notification.UnreadCountResponse{}, err
	}
	return s.UnreadCount(ctx)
}

// MarkAllAsRead implements notification.InboxService.
func (s *InboxServiceImpl) MarkAllAsRead(ctx context.Context) (notification.UnreadCountResponse, error) {
	if err := s.repo.MarkAllAsRead(ctx); err != nil {
		return notification.UnreadCountResponse{}, err
	}
	return s.UnreadCount(ctx)
}
