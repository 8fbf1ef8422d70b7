package service

import (
	"context"
	"fmt"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/icalfeed"
	"github.com/pkordes/event-planner/internal/repo"
)

// CalendarService renders the caller's events as a day range or an
// iCalendar feed.
type CalendarService struct {
	events repo.EventRepo
	now    Clock
}

// NewCalendarService constructs a CalendarService. A nil clock uses the system clock.
func NewCalendarService(events repo.EventRepo, now Clock) *CalendarService {
	if now == nil {
		now = systemClock
	}
	return &CalendarService{events: events, now: now}
}

// Range lists occurrences between from and to inclusive. Routines appear
// once per day from their start date onward.
func (s *CalendarService) Range(ctx context.Context, userID string, from, to calendar.CalendarDate) ([]calendar.Occurrence, error) {
	events, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.CalendarService.Range: %w", err)
	}
	occ, err := calendar.Expand(events, from, to)
	if err != nil {
		return nil, fmt.Errorf("service.CalendarService.Range: %w", err)
	}
	return occ, nil
}

// Feed returns the caller's events as an iCalendar document.
func (s *CalendarService) Feed(ctx context.Context, userID string) (string, error) {
	events, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("service.CalendarService.Feed: %w", err)
	}
	out, err := icalfeed.Encode(events, s.now())
	if err != nil {
		return "", fmt.Errorf("service.CalendarService.Feed: %w", err)
	}
	return out, nil
}
