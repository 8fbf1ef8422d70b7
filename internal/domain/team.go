package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is a collaborator's permission level on a single event.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

var roleRank = map[Role]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Allows reports whether r grants at least the permissions of required.
// Unknown roles allow nothing.
func (r Role) Allows(required Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	return have >= roleRank[required]
}

// Collaborator links a user to an event with a role.
// A user appears at most once per event.
type Collaborator struct {
	EventID  uuid.UUID
	UserID   string
	Role     Role
	JoinedAt time.Time
}
