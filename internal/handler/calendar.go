package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
)

// GetCalendar handles GET /calendar?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Both bounds are inclusive and required.
func (s *Server) GetCalendar(ctx context.Context, req gen.GetCalendarRequestObject) (gen.GetCalendarResponseObject, error) {
	from := calendar.DateOf(req.Params.From.Time)
	to := calendar.DateOf(req.Params.To.Time)

	occ, err := s.svc.Calendar.Range(ctx, middleware.UserID(ctx), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.GetCalendar422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	out := make(gen.GetCalendar200JSONResponse, len(occ))
	for i, o := range occ {
		out[i] = gen.Occurrence{
			EventId:  o.EventID,
			Kind:     string(o.Kind),
			Title:    o.Title,
			Location: o.Location,
			Color:    o.Color,
			Start:    o.Start,
			End:      o.End,
			Date:     dateOf(o.Start),
		}
	}
	return out, nil
}

// GetCalendarFeed handles GET /calendar.ics.
func (s *Server) GetCalendarFeed(ctx context.Context, _ gen.GetCalendarFeedRequestObject) (gen.GetCalendarFeedResponseObject, error) {
	feed, err := s.svc.Calendar.Feed(ctx, middleware.UserID(ctx))
	if err != nil {
		return nil, err
	}

	return gen.GetCalendarFeed200TextcalendarResponse{
		Body:          strings.NewReader(feed),
		Headers:       gen.GetCalendarFeed200ResponseHeaders{ContentDisposition: `attachment; filename="events.ics"`},
		ContentLength: int64(len(feed)),
	}, nil
}
