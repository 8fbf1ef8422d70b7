package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler"
)

func TestListNotifications_UnreadFilter(t *testing.T) {
	eventID := uuid.New()
	var gotUnread bool
	svc := &mockNotificationServicer{
		list: func(_ context.Context, _ string, unreadOnly bool) ([]domain.Notification, error) {
			gotUnread = unreadOnly
			return []domain.Notification{
				{ID: uuid.New(), Type: domain.NotifyEvent, Title: "Tomorrow", EventID: &eventID},
				{ID: uuid.New(), Type: domain.NotifySystem, Title: "Welcome"},
			}, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Notifications: svc}), http.MethodGet, "/notifications?unread=true", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotUnread)
	assert.Contains(t, rec.Body.String(), `"event_id":"`+eventID.String()+`"`)
}

func TestListNotifications_400_BadUnread(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Services{Notifications: &mockNotificationServicer{}}), http.MethodGet, "/notifications?unread=maybe", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkNotificationRead(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"marked", nil, http.StatusNoContent},
		{"someone else's", domain.ErrNotFound, http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockNotificationServicer{
				markRead: func(_ context.Context, _ string, _ uuid.UUID) error { return tc.err },
			}
			rec := do(t, newHTTPHandler(handler.Services{Notifications: svc}), http.MethodPost,
				"/notifications/"+uuid.NewString()+"/read", nil)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
