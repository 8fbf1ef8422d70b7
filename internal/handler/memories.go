package handler

import (
	"context"
	"errors"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
)

// ListMemories handles GET /events/{id}/memories.
func (s *Server) ListMemories(ctx context.Context, req gen.ListMemoriesRequestObject) (gen.ListMemoriesResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	page, err := s.svc.Memories.List(ctx, middleware.UserID(ctx), req.Id, params)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListMemories404JSONResponse(notFoundBody("event not found")), nil
		}
		return nil, err
	}

	data := make([]gen.Memory, len(page.Items))
	for i, m := range page.Items {
		data[i] = memoryToResponse(m)
	}
	return gen.ListMemories200JSONResponse{
		Data:       data,
		Pagination: paginationOf(page.Params, page.Total),
	}, nil
}

// CreateMemory handles POST /events/{id}/memories.
// The media itself is uploaded elsewhere; only its URL is recorded.
func (s *Server) CreateMemory(ctx context.Context, req gen.CreateMemoryRequestObject) (gen.CreateMemoryResponseObject, error) {
	if req.Body == nil {
		return gen.CreateMemory422JSONResponse(requestBody("request body is required")), nil
	}
	in := domain.Memory{
		EventID: req.Id,
		URL:     req.Body.Url,
		Alt:     deref(req.Body.Alt),
	}
	if req.Body.Type != nil {
		in.Type = domain.MediaType(*req.Body.Type)
	}

	m, err := s.svc.Memories.Create(ctx, middleware.UserID(ctx), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CreateMemory404JSONResponse(notFoundBody("event not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.CreateMemory403JSONResponse(forbiddenBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateMemory422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateMemory201JSONResponse(memoryToResponse(m)), nil
}

// DeleteMemory handles DELETE /memories/{id}.
func (s *Server) DeleteMemory(ctx context.Context, req gen.DeleteMemoryRequestObject) (gen.DeleteMemoryResponseObject, error) {
	err := s.svc.Memories.Delete(ctx, middleware.UserID(ctx), req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteMemory404JSONResponse(notFoundBody("memory not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.DeleteMemory403JSONResponse(forbiddenBody(err)), nil
		}
		return nil, err
	}

	return gen.DeleteMemory204Response{}, nil
}

// ReactToMemory handles POST /memories/{id}/reactions.
// Sending the caller's current emoji again removes the reaction.
func (s *Server) ReactToMemory(ctx context.Context, req gen.ReactToMemoryRequestObject) (gen.ReactToMemoryResponseObject, error) {
	if req.Body == nil {
		return gen.ReactToMemory422JSONResponse(requestBody("request body is required")), nil
	}

	action, err := s.svc.Memories.React(ctx, middleware.UserID(ctx), req.Id, req.Body.Emoji)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ReactToMemory404JSONResponse(notFoundBody("memory not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.ReactToMemory422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.ReactToMemory200JSONResponse(gen.ToggleResult{Action: gen.ToggleAction(action)}), nil
}

func memoryToResponse(m domain.Memory) gen.Memory {
	reactions := make([]gen.Reaction, len(m.Reactions))
	for i, re := range m.Reactions {
		reactions[i] = gen.Reaction{UserId: re.UserID, Emoji: re.Emoji}
	}
	return gen.Memory{
		Id:           m.ID,
		EventId:      m.EventID,
		Url:          m.URL,
		Alt:          m.Alt,
		Type:         gen.MediaType(m.Type),
		UploadedById: m.UploadedByID,
		CreatedAt:    m.CreatedAt,
		Reactions:    reactions,
	}
}
