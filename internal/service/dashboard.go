package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
)

// DashboardObserver receives the bucket sizes of every dashboard built.
type DashboardObserver interface {
	ObserveDashboard(b calendar.Buckets)
}

// Dashboard is the caller's classified view of their events and routines.
type Dashboard struct {
	GeneratedAt time.Time
	Buckets     calendar.Buckets
	// DaysRemaining holds the countdown for every pending item, by ID.
	DaysRemaining map[uuid.UUID]int
	// FeaturedLocation is where the header weather card points.
	FeaturedLocation string
}

// DashboardService builds dashboards.
type DashboardService struct {
	events           repo.EventRepo
	routines         repo.RoutineRepo
	now              Clock
	fallbackLocation string
	observer         DashboardObserver
}

// DashboardOption customises a DashboardService.
type DashboardOption func(*DashboardService)

// WithDashboardClock overrides the time source.
func WithDashboardClock(c Clock) DashboardOption {
	return func(s *DashboardService) { s.now = c }
}

// WithFallbackLocation sets the featured location used when no active or
// pending item has one.
func WithFallbackLocation(loc string) DashboardOption {
	return func(s *DashboardService) { s.fallbackLocation = loc }
}

// WithDashboardObserver registers an observer for bucket sizes.
func WithDashboardObserver(o DashboardObserver) DashboardOption {
	return func(s *DashboardService) { s.observer = o }
}

// NewDashboardService constructs a DashboardService backed by the provided repos.
func NewDashboardService(events repo.EventRepo, routines repo.RoutineRepo, opts ...DashboardOption) *DashboardService {
	s := &DashboardService{events: events, routines: routines, now: systemClock}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dashboard classifies the caller's events as of the service clock.
func (s *DashboardService) Dashboard(ctx context.Context, userID string) (Dashboard, error) {
	return s.DashboardAt(ctx, userID, s.now())
}

// DashboardAt classifies the caller's events as of now. Routine completion is
// read for now's UTC day only.
func (s *DashboardService) DashboardAt(ctx context.Context, userID string, now time.Time) (Dashboard, error) {
	events, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("service.DashboardService.Dashboard: %w", err)
	}

	day := calendar.DateOf(now)
	done, err := s.routines.CompletedBetween(ctx, userID, day.Midnight(), day.AddDays(1).Midnight())
	if err != nil {
		return Dashboard{}, fmt.Errorf("service.DashboardService.Dashboard: %w", err)
	}

	windows := make([]domain.EventWindow, 0, len(events))
	for _, e := range events {
		windows = append(windows, domain.WindowOf(e, done[e.ID]))
	}

	buckets := calendar.Classify(now, windows)
	days := make(map[uuid.UUID]int, len(buckets.Pending))
	for _, w := range buckets.Pending {
		days[w.ID] = calendar.DaysRemaining(now, w.StartBoundary)
	}

	if s.observer != nil {
		s.observer.ObserveDashboard(buckets)
	}

	return Dashboard{
		GeneratedAt:      now,
		Buckets:          buckets,
		DaysRemaining:    days,
		FeaturedLocation: featuredLocation(buckets, s.fallbackLocation),
	}, nil
}

// featuredLocation picks the first active item with a location, then the
// first pending one, then the fallback.
func featuredLocation(b calendar.Buckets, fallback string) string {
	for _, group := range [][]domain.EventWindow{b.Active, b.Pending} {
		for _, w := range group {
			if w.Location != "" {
				return w.Location
			}
		}
	}
	return fallback
}
