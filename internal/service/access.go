// Package service contains the business logic for the event planner.
// Services validate inputs, enforce business rules and role checks, and
// orchestrate repo calls. No SQL lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
)

// Clock returns the current instant. Services take one so tests can pin "now".
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

// authorize returns the caller's membership on an event if their role is at
// least required. Non-members get domain.ErrNotFound so event existence is
// not leaked; members with too little access get domain.ErrForbidden.
func authorize(ctx context.Context, team repo.TeamRepo, eventID uuid.UUID, userID string, required domain.Role) (domain.Collaborator, error) {
	member, err := team.Get(ctx, eventID, userID)
	if err != nil {
		return domain.Collaborator{}, err
	}
	if !member.Role.Allows(required) {
		return domain.Collaborator{}, fmt.Errorf("%w: %s role required", domain.ErrForbidden, required)
	}
	return member, nil
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// requireText trims s and rejects it when shorter than minLen runes.
func requireText(field, s string, minLen int) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < minLen {
		if minLen <= 1 {
			return "", fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
		}
		return "", fmt.Errorf("%w: %s must be at least %d characters", domain.ErrValidation, field, minLen)
	}
	return s, nil
}

// isNotFound reports whether err wraps domain.ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
