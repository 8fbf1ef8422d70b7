package service

import (
	"context"
	"fmt"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
)

// ExportService assembles a flat export of the caller's events and checklists.
type ExportService struct {
	events    repo.EventRepo
	checklist repo.ChecklistRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(events repo.EventRepo, checklist repo.ChecklistRepo) *ExportService {
	return &ExportService{events: events, checklist: checklist}
}

// Export returns one ExportRow per checklist item across the caller's events.
// Events with no items contribute one row with empty checklist fields.
func (s *ExportService) Export(ctx context.Context, userID string) ([]domain.ExportRow, error) {
	events, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, e := range events {
		cats, err := s.checklist.ListByEvent(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: event %s: %w", e.ID, err)
		}

		base := domain.ExportRow{
			EventID:    e.ID.String(),
			EventTitle: e.Title,
			EventKind:  string(e.Kind),
			StartDate:  calendar.DateOf(e.StartDate).String(),
			EndDate:    calendar.DateOf(e.EndDate).String(),
			Location:   e.Location,
		}

		n := 0
		for _, c := range cats {
			for _, it := range c.Items {
				row := base
				row.Category = c.Name
				row.Item = it.Title
				row.Priority = string(it.Priority)
				row.Completed = it.Completed
				rows = append(rows, row)
				n++
			}
		}
		if n == 0 {
			rows = append(rows, base)
		}
	}
	return rows, nil
}
