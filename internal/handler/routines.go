package handler

import (
	"context"
	"errors"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
)

// ToggleRoutine handles POST /routines/{id}/toggle.
// The response reports whether today's completion was checked or unchecked.
func (s *Server) ToggleRoutine(ctx context.Context, req gen.ToggleRoutineRequestObject) (gen.ToggleRoutineResponseObject, error) {
	action, err := s.svc.Routines.Toggle(ctx, middleware.UserID(ctx), req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ToggleRoutine404JSONResponse(notFoundBody("routine not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.ToggleRoutine422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.ToggleRoutine200JSONResponse(gen.ToggleResult{Action: gen.ToggleAction(action)}), nil
}
