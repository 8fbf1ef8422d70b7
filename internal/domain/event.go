// Package domain contains the core data types for the event planner.
// This package has no dependencies on other internal packages and is
// imported by every layer (calendar, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind distinguishes dated events from daily routines.
type EventKind string

const (
	// KindEvent is a trip, party or anything else with a start and end date.
	KindEvent EventKind = "event"
	// KindRoutine is a recurring daily habit tracked by a completion flag.
	KindRoutine EventKind = "routine"
)

// Valid reports whether k is one of the known kinds.
func (k EventKind) Valid() bool {
	return k == KindEvent || k == KindRoutine
}

// Event is the top-level aggregate. Checklists, memories and the team all
// belong to an event.
//
// StartDate and EndDate are stored boundaries: StartDate is 00:00:00 UTC on
// the first day and EndDate is 23:59:59 UTC on the last day. They are always
// produced by calendar.EventBoundaries, never taken from user input directly.
type Event struct {
	ID          uuid.UUID
	Kind        EventKind
	Title       string
	Description string
	Location    string
	Color       string
	StartDate   time.Time
	EndDate     time.Time
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventInput is what callers submit to create or update an event.
// Dates arrive as the user picked them; the service turns them into
// boundaries in the caller's timezone.
type EventInput struct {
	Kind        EventKind
	Title       string
	Description string
	Location    string
	Color       string
	StartDate   string
	EndDate     *string // nil means a single-day event
	Timezone    *time.Location
	Categories  []CategoryInput
}

// CategoryInput is an initial checklist category submitted with a new event.
type CategoryInput struct {
	Name  string
	Items []string
}
