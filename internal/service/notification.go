package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
)

// NotificationService reads and acknowledges the caller's notifications.
type NotificationService struct {
	notifications repo.NotificationRepo
}

// NewNotificationService constructs a NotificationService backed by the provided repo.
func NewNotificationService(n repo.NotificationRepo) *NotificationService {
	return &NotificationService{notifications: n}
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error) {
	out, err := s.notifications.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("service.NotificationService.List: %w", err)
	}
	if out == nil {
		return []domain.Notification{}, nil
	}
	return out, nil
}

// MarkRead flags one of the caller's notifications as read.
// Returns domain.ErrNotFound for notifications addressed to someone else.
func (s *NotificationService) MarkRead(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.notifications.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("service.NotificationService.MarkRead: %w", err)
	}
	return nil
}
