package handler

import (
	"context"
	"errors"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
)

// ListEvents handles GET /events.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListEvents(ctx context.Context, req gen.ListEventsRequestObject) (gen.ListEventsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	page, err := s.svc.Events.List(ctx, middleware.UserID(ctx), params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Event, len(page.Items))
	for i, e := range page.Items {
		data[i] = eventToResponse(e)
	}
	return gen.ListEvents200JSONResponse{
		Data:       data,
		Pagination: paginationOf(page.Params, page.Total),
	}, nil
}

// CreateEvent handles POST /events.
func (s *Server) CreateEvent(ctx context.Context, req gen.CreateEventRequestObject) (gen.CreateEventResponseObject, error) {
	if req.Body == nil {
		return gen.CreateEvent422JSONResponse(requestBody("request body is required")), nil
	}

	e, err := s.svc.Events.Create(ctx, middleware.UserID(ctx), eventInputFrom(ctx, req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateEvent422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateEvent201JSONResponse(eventToResponse(e)), nil
}

// GetEvent handles GET /events/{id}.
func (s *Server) GetEvent(ctx context.Context, req gen.GetEventRequestObject) (gen.GetEventResponseObject, error) {
	e, err := s.svc.Events.Get(ctx, middleware.UserID(ctx), req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetEvent404JSONResponse(notFoundBody("event not found")), nil
		}
		return nil, err
	}

	return gen.GetEvent200JSONResponse(eventToResponse(e)), nil
}

// UpdateEvent handles PUT /events/{id}.
func (s *Server) UpdateEvent(ctx context.Context, req gen.UpdateEventRequestObject) (gen.UpdateEventResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateEvent422JSONResponse(requestBody("request body is required")), nil
	}

	e, err := s.svc.Events.Update(ctx, middleware.UserID(ctx), req.Id, eventInputFrom(ctx, req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateEvent404JSONResponse(notFoundBody("event not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.UpdateEvent403JSONResponse(forbiddenBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateEvent422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateEvent200JSONResponse(eventToResponse(e)), nil
}

// DeleteEvent handles DELETE /events/{id}.
func (s *Server) DeleteEvent(ctx context.Context, req gen.DeleteEventRequestObject) (gen.DeleteEventResponseObject, error) {
	err := s.svc.Events.Delete(ctx, middleware.UserID(ctx), req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteEvent404JSONResponse(notFoundBody("event not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.DeleteEvent403JSONResponse(forbiddenBody(err)), nil
		}
		return nil, err
	}

	return gen.DeleteEvent204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

// eventInputFrom converts the request body into a domain.EventInput.
// Dates stay strings so the service can read them in the caller's timezone.
func eventInputFrom(ctx context.Context, body *gen.EventInput) domain.EventInput {
	in := domain.EventInput{
		Kind:        domain.EventKind(deref(body.Kind)),
		Title:       body.Title,
		Description: deref(body.Description),
		Location:    deref(body.Location),
		Color:       deref(body.Color),
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
		Timezone:    middleware.Location(ctx),
	}
	if body.Categories != nil {
		for _, c := range *body.Categories {
			cat := domain.CategoryInput{Name: c.Name}
			if c.Items != nil {
				cat.Items = *c.Items
			}
			in.Categories = append(in.Categories, cat)
		}
	}
	return in
}

// eventToResponse converts a domain.Event into the generated gen.Event type.
func eventToResponse(e domain.Event) gen.Event {
	return gen.Event{
		Id:          e.ID,
		Kind:        string(e.Kind),
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Color:       e.Color,
		StartDate:   dateOf(e.StartDate),
		EndDate:     dateOf(e.EndDate),
		StartsAt:    e.StartDate,
		EndsAt:      e.EndDate,
		CreatedById: e.CreatedByID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// dateOf reports the UTC calendar date of a stored boundary.
func dateOf(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t.UTC()}
}

func paginationOf(p domain.PaginationParams, total int64) gen.Pagination {
	return gen.Pagination{Page: p.Page, Limit: p.Limit, Total: int(total)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
