package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
)

// RoutineService tracks daily completion of routines.
type RoutineService struct {
	events   repo.EventRepo
	team     repo.TeamRepo
	routines repo.RoutineRepo
	now      Clock
}

// NewRoutineService constructs a RoutineService. A nil clock uses the system clock.
func NewRoutineService(events repo.EventRepo, team repo.TeamRepo, routines repo.RoutineRepo, now Clock) *RoutineService {
	if now == nil {
		now = systemClock
	}
	return &RoutineService{events: events, team: team, routines: routines, now: now}
}

// Toggle flips the caller's completion of a routine for the current UTC day.
// Returns domain.ActionChecked or domain.ActionUnchecked. The store keeps at
// most one completion per routine, user and UTC day, so concurrent toggles
// cannot leave a day with two completions.
// Returns domain.ErrValidation if the event is not a routine.
func (s *RoutineService) Toggle(ctx context.Context, userID string, routineID uuid.UUID) (domain.ToggleAction, error) {
	if _, err := authorize(ctx, s.team, routineID, userID, domain.RoleViewer); err != nil {
		return "", fmt.Errorf("service.RoutineService.Toggle: %w", err)
	}
	event, err := s.events.GetByID(ctx, routineID)
	if err != nil {
		return "", fmt.Errorf("service.RoutineService.Toggle: %w", err)
	}
	if event.Kind != domain.KindRoutine {
		return "", fmt.Errorf("%w: only routines can be checked off", domain.ErrValidation)
	}

	now := s.now()
	day := calendar.DateOf(now)
	existing, err := s.routines.FindCompletion(ctx, routineID, userID, day.Midnight(), day.AddDays(1).Midnight())
	switch {
	case err == nil:
		// A concurrent toggle may have removed it first; the day is unchecked either way.
		if err := s.routines.DeleteCompletion(ctx, existing); err != nil && !isNotFound(err) {
			return "", fmt.Errorf("service.RoutineService.Toggle: %w", err)
		}
		return domain.ActionUnchecked, nil
	case isNotFound(err):
		if err := s.routines.AddCompletion(ctx, routineID, userID, now); err != nil {
			return "", fmt.Errorf("service.RoutineService.Toggle: %w", err)
		}
		return domain.ActionChecked, nil
	default:
		return "", fmt.Errorf("service.RoutineService.Toggle: %w", err)
	}
}
