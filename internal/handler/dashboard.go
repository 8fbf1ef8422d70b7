package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
	"github.com/pkordes/event-planner/internal/service"
)

// GetDashboard handles GET /dashboard.
// Pending items carry days_remaining; the other buckets omit it.
func (s *Server) GetDashboard(ctx context.Context, _ gen.GetDashboardRequestObject) (gen.GetDashboardResponseObject, error) {
	d, err := s.svc.Dashboard.Dashboard(ctx, middleware.UserID(ctx))
	if err != nil {
		return nil, err
	}

	return gen.GetDashboard200JSONResponse(dashboardToResponse(d)), nil
}

func dashboardToResponse(d service.Dashboard) gen.Dashboard {
	return gen.Dashboard{
		GeneratedAt:      d.GeneratedAt,
		FeaturedLocation: d.FeaturedLocation,
		Active:           windowsToResponse(d.Buckets.Active, nil),
		Pending:          windowsToResponse(d.Buckets.Pending, d.DaysRemaining),
		Historical:       windowsToResponse(d.Buckets.Historical, nil),
	}
}

func windowsToResponse(items []domain.EventWindow, days map[uuid.UUID]int) []gen.Window {
	out := make([]gen.Window, len(items))
	for i, it := range items {
		out[i] = gen.Window{
			Id:             it.ID,
			Kind:           string(it.Kind),
			Title:          it.Title,
			Location:       it.Location,
			Color:          it.Color,
			StartDate:      dateOf(it.StartBoundary),
			EndDate:        dateOf(it.EndBoundary),
			CompletedToday: it.CompletedToday,
		}
		if n, ok := days[it.ID]; ok {
			out[i].DaysRemaining = &n
		}
	}
	return out
}
