package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventWindow is the strict input record for dashboard classification.
// It is built fresh from an Event on every pass and never mutated.
//
// For KindEvent, StartBoundary and EndBoundary are the stored UTC boundaries.
// For KindRoutine they are ignored and CompletedToday carries the caller's
// completion state for the current UTC day.
type EventWindow struct {
	ID             uuid.UUID
	Kind           EventKind
	Title          string
	Location       string
	Color          string
	StartBoundary  time.Time
	EndBoundary    time.Time
	CompletedToday bool
}

// WindowOf builds the classification record for e.
func WindowOf(e Event, completedToday bool) EventWindow {
	return EventWindow{
		ID:             e.ID,
		Kind:           e.Kind,
		Title:          e.Title,
		Location:       e.Location,
		Color:          e.Color,
		StartBoundary:  e.StartDate,
		EndBoundary:    e.EndDate,
		CompletedToday: e.Kind == KindRoutine && completedToday,
	}
}
