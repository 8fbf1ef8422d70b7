package handler

import (
	"context"
	"errors"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
)

// ListTeam handles GET /events/{id}/team.
func (s *Server) ListTeam(ctx context.Context, req gen.ListTeamRequestObject) (gen.ListTeamResponseObject, error) {
	members, err := s.svc.Team.List(ctx, middleware.UserID(ctx), req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListTeam404JSONResponse(notFoundBody("event not found")), nil
		}
		return nil, err
	}

	out := make(gen.ListTeam200JSONResponse, len(members))
	for i, c := range members {
		out[i] = collaboratorToResponse(c)
	}
	return out, nil
}

// AddTeamMember handles POST /events/{id}/team.
// A missing role adds the member as a viewer.
func (s *Server) AddTeamMember(ctx context.Context, req gen.AddTeamMemberRequestObject) (gen.AddTeamMemberResponseObject, error) {
	if req.Body == nil {
		return gen.AddTeamMember422JSONResponse(requestBody("request body is required")), nil
	}
	var role domain.Role
	if req.Body.Role != nil {
		role = domain.Role(*req.Body.Role)
	}

	c, err := s.svc.Team.Add(ctx, middleware.UserID(ctx), req.Id, req.Body.UserId, role)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.AddTeamMember404JSONResponse(notFoundBody("event not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.AddTeamMember403JSONResponse(forbiddenBody(err)), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.AddTeamMember409JSONResponse(conflictBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.AddTeamMember422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.AddTeamMember201JSONResponse(collaboratorToResponse(c)), nil
}

// ChangeTeamRole handles PUT /events/{id}/team/{userId}.
func (s *Server) ChangeTeamRole(ctx context.Context, req gen.ChangeTeamRoleRequestObject) (gen.ChangeTeamRoleResponseObject, error) {
	if req.Body == nil {
		return gen.ChangeTeamRole422JSONResponse(requestBody("request body is required")), nil
	}

	c, err := s.svc.Team.ChangeRole(ctx, middleware.UserID(ctx), req.Id, req.UserId, domain.Role(req.Body.Role))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ChangeTeamRole404JSONResponse(notFoundBody("team member not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.ChangeTeamRole403JSONResponse(forbiddenBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.ChangeTeamRole422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.ChangeTeamRole200JSONResponse(collaboratorToResponse(c)), nil
}

// RemoveTeamMember handles DELETE /events/{id}/team/{userId}.
func (s *Server) RemoveTeamMember(ctx context.Context, req gen.RemoveTeamMemberRequestObject) (gen.RemoveTeamMemberResponseObject, error) {
	err := s.svc.Team.Remove(ctx, middleware.UserID(ctx), req.Id, req.UserId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.RemoveTeamMember404JSONResponse(notFoundBody("team member not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.RemoveTeamMember403JSONResponse(forbiddenBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.RemoveTeamMember422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.RemoveTeamMember204Response{}, nil
}

func collaboratorToResponse(c domain.Collaborator) gen.Collaborator {
	return gen.Collaborator{
		EventId:  c.EventID,
		UserId:   c.UserID,
		Role:     gen.Role(c.Role),
		JoinedAt: c.JoinedAt,
	}
}
