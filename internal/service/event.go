package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
)

const minTitleLen = 3

// EventService implements business logic for events and routines.
type EventService struct {
	events repo.EventRepo
	team   repo.TeamRepo
}

// NewEventService constructs an EventService backed by the provided repos.
func NewEventService(events repo.EventRepo, team repo.TeamRepo) *EventService {
	return &EventService{events: events, team: team}
}

// Create validates the input, turns the picked dates into stored boundaries
// in the caller's timezone and persists the event with the caller as admin.
// Returns domain.ErrValidation if input violates business rules.
func (s *EventService) Create(ctx context.Context, userID string, in domain.EventInput) (domain.Event, error) {
	event, err := buildEvent(in)
	if err != nil {
		return domain.Event{}, err
	}
	event.CreatedByID = userID

	categories, err := cleanCategories(in.Categories)
	if err != nil {
		return domain.Event{}, err
	}

	result, err := s.events.Create(ctx, event, categories)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	return result, nil
}

// Get returns an event the caller collaborates on.
// Returns domain.ErrNotFound if it does not exist or the caller is not on its team.
func (s *EventService) Get(ctx context.Context, userID string, id uuid.UUID) (domain.Event, error) {
	if _, err := authorize(ctx, s.team, id, userID, domain.RoleViewer); err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Get: %w", err)
	}
	result, err := s.events.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Get: %w", err)
	}
	return result, nil
}

// List returns one page of the caller's events, most recent start first.
func (s *EventService) List(ctx context.Context, userID string, p domain.PaginationParams) (domain.Page[domain.Event], error) {
	events, total, err := s.events.ListByUserPaged(ctx, userID, p)
	if err != nil {
		return domain.Page[domain.Event]{}, fmt.Errorf("service.EventService.List: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return domain.Page[domain.Event]{Items: events, Total: total, Params: p}, nil
}

// Update re-validates the input and overwrites the event. Editors and admins
// may update; the kind is fixed at creation and in.Kind is ignored.
func (s *EventService) Update(ctx context.Context, userID string, id uuid.UUID, in domain.EventInput) (domain.Event, error) {
	if _, err := authorize(ctx, s.team, id, userID, domain.RoleEditor); err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Update: %w", err)
	}
	existing, err := s.events.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Update: %w", err)
	}

	in.Kind = existing.Kind
	event, err := buildEvent(in)
	if err != nil {
		return domain.Event{}, err
	}
	event.ID = existing.ID
	event.CreatedByID = existing.CreatedByID

	result, err := s.events.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an event and everything attached to it. Admins only.
func (s *EventService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if _, err := authorize(ctx, s.team, id, userID, domain.RoleAdmin); err != nil {
		return fmt.Errorf("service.EventService.Delete: %w", err)
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.EventService.Delete: %w", err)
	}
	return nil
}

// buildEvent enforces the rules shared by Create and Update:
//   - title has at least three characters after trimming
//   - color is a #RRGGBB hex string
//   - kind, when given, is event or routine (default event)
//   - dates normalise to ordered boundaries in the input timezone
func buildEvent(in domain.EventInput) (domain.Event, error) {
	title, err := requireText("title", in.Title, minTitleLen)
	if err != nil {
		return domain.Event{}, err
	}
	if !colorPattern.MatchString(in.Color) {
		return domain.Event{}, fmt.Errorf("%w: color must be a #RRGGBB hex value", domain.ErrValidation)
	}

	kind := in.Kind
	if kind == "" {
		kind = domain.KindEvent
	}
	if !kind.Valid() {
		return domain.Event{}, fmt.Errorf("%w: unknown kind %q", domain.ErrValidation, kind)
	}

	loc := in.Timezone
	if loc == nil {
		loc = time.UTC
	}
	start, end, err := calendar.EventBoundaries(in.StartDate, in.EndDate, loc)
	if err != nil {
		return domain.Event{}, err
	}

	return domain.Event{
		Kind:        kind,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Color:       strings.ToLower(in.Color),
		StartDate:   start,
		EndDate:     end,
	}, nil
}

// cleanCategories trims names and items, rejecting unnamed categories and
// dropping blank items.
func cleanCategories(in []domain.CategoryInput) ([]domain.CategoryInput, error) {
	out := make([]domain.CategoryInput, 0, len(in))
	for _, c := range in {
		name, err := requireText("category name", c.Name, 1)
		if err != nil {
			return nil, err
		}
		items := make([]string, 0, len(c.Items))
		for _, it := range c.Items {
			if it = strings.TrimSpace(it); it != "" {
				items = append(items, it)
			}
		}
		out = append(out, domain.CategoryInput{Name: name, Items: items})
	}
	return out, nil
}
