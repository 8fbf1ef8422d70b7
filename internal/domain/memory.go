package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaType is the kind of file a memory points at.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Memory is a photo or video attached to an event. The file itself lives in
// external storage; only its URL is kept here.
type Memory struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	URL          string
	Alt          string
	Type         MediaType
	UploadedByID string
	CreatedAt    time.Time
	Reactions    []Reaction
}

// Reaction is one user's emoji on a memory. A user has at most one reaction
// per memory.
type Reaction struct {
	MemoryID uuid.UUID
	UserID   string
	Emoji    string
}

// ToggleAction reports what a toggle operation did.
type ToggleAction string

const (
	ActionAdded     ToggleAction = "added"
	ActionReplaced  ToggleAction = "replaced"
	ActionRemoved   ToggleAction = "removed"
	ActionChecked   ToggleAction = "checked"
	ActionUnchecked ToggleAction = "unchecked"
)
