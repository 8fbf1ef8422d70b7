package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorises a notification for display.
type NotificationType string

const (
	NotifyWeather NotificationType = "weather"
	NotifyTask    NotificationType = "task"
	NotifyMessage NotificationType = "message"
	NotifyEvent   NotificationType = "event"
	NotifySystem  NotificationType = "system"
)

// Notification is a message addressed to one user, optionally about an event.
type Notification struct {
	ID        uuid.UUID
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	Read      bool
	EventID   *uuid.UUID
	CreatedAt time.Time
}
