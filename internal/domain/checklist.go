package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority orders checklist items. Stored as a Postgres enum.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority maps user input to a Priority. The Spanish labels used by
// the web client (alta, media, baja) are accepted as aliases.
// Anything unrecognised falls back to PriorityMedium.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "alta":
		return PriorityHigh
	case "low", "baja":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Category groups checklist items within an event (e.g. "Clothes", "Documents").
type Category struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
	Items     []Item
}

// Item is a single task on a checklist.
// AssignedToID is empty when nobody is assigned.
type Item struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	Title        string
	Completed    bool
	Priority     Priority
	AssignedToID string
	CreatedAt    time.Time
}
