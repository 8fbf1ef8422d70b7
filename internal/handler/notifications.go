package handler

import (
	"context"
	"errors"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
)

// ListNotifications handles GET /notifications.
// ?unread=true limits the result to unread notifications.
func (s *Server) ListNotifications(ctx context.Context, req gen.ListNotificationsRequestObject) (gen.ListNotificationsResponseObject, error) {
	unreadOnly := req.Params.Unread != nil && *req.Params.Unread
	list, err := s.svc.Notifications.List(ctx, middleware.UserID(ctx), unreadOnly)
	if err != nil {
		return nil, err
	}

	out := make(gen.ListNotifications200JSONResponse, len(list))
	for i, n := range list {
		out[i] = gen.Notification{
			Id:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			EventId:   n.EventID,
			CreatedAt: n.CreatedAt,
		}
	}
	return out, nil
}

// MarkNotificationRead handles POST /notifications/{id}/read.
func (s *Server) MarkNotificationRead(ctx context.Context, req gen.MarkNotificationReadRequestObject) (gen.MarkNotificationReadResponseObject, error) {
	err := s.svc.Notifications.MarkRead(ctx, middleware.UserID(ctx), req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.MarkNotificationRead404JSONResponse(notFoundBody("notification not found")), nil
		}
		return nil, err
	}

	return gen.MarkNotificationRead204Response{}, nil
}
