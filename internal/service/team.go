package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
)

// TeamService manages who collaborates on an event. Every event keeps at
// least one admin.
type TeamService struct {
	team repo.TeamRepo
}

// NewTeamService constructs a TeamService backed by the provided TeamRepo.
func NewTeamService(team repo.TeamRepo) *TeamService {
	return &TeamService{team: team}
}

// List returns the event's team, admins first.
func (s *TeamService) List(ctx context.Context, userID string, eventID uuid.UUID) ([]domain.Collaborator, error) {
	if _, err := authorize(ctx, s.team, eventID, userID, domain.RoleViewer); err != nil {
		return nil, fmt.Errorf("service.TeamService.List: %w", err)
	}
	team, err := s.team.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service.TeamService.List: %w", err)
	}
	return team, nil
}

// Add invites a user to the event. An empty role means viewer.
// Returns domain.ErrConflict if the user is already on the team.
func (s *TeamService) Add(ctx context.Context, userID string, eventID uuid.UUID, memberID string, role domain.Role) (domain.Collaborator, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return domain.Collaborator{}, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	if role == "" {
		role = domain.RoleViewer
	}
	if !role.Valid() {
		return domain.Collaborator{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	if _, err := authorize(ctx, s.team, eventID, userID, domain.RoleAdmin); err != nil {
		return domain.Collaborator{}, fmt.Errorf("service.TeamService.Add: %w", err)
	}
	result, err := s.team.Add(ctx, domain.Collaborator{EventID: eventID, UserID: memberID, Role: role})
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("service.TeamService.Add: %w", err)
	}
	return result, nil
}

// ChangeRole sets a member's role. Demoting the last admin is rejected.
func (s *TeamService) ChangeRole(ctx context.Context, userID string, eventID uuid.UUID, memberID string, role domain.Role) (domain.Collaborator, error) {
	if !role.Valid() {
		return domain.Collaborator{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	if _, err := authorize(ctx, s.team, eventID, userID, domain.RoleAdmin); err != nil {
		return domain.Collaborator{}, fmt.Errorf("service.TeamService.ChangeRole: %w", err)
	}
	member, err := s.team.Get(ctx, eventID, memberID)
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("service.TeamService.ChangeRole: %w", err)
	}
	if member.Role == domain.RoleAdmin && role != domain.RoleAdmin {
		if err := s.requireOtherAdmin(ctx, eventID); err != nil {
			return domain.Collaborator{}, err
		}
	}
	result, err := s.team.UpdateRole(ctx, eventID, memberID, role)
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("service.TeamService.ChangeRole: %w", err)
	}
	return result, nil
}

// Remove takes a member off the team. Removing the last admin is rejected.
func (s *TeamService) Remove(ctx context.Context, userID string, eventID uuid.UUID, memberID string) error {
	if _, err := authorize(ctx, s.team, eventID, userID, domain.RoleAdmin); err != nil {
		return fmt.Errorf("service.TeamService.Remove: %w", err)
	}
	member, err := s.team.Get(ctx, eventID, memberID)
	if err != nil {
		return fmt.Errorf("service.TeamService.Remove: %w", err)
	}
	if member.Role == domain.RoleAdmin {
		if err := s.requireOtherAdmin(ctx, eventID); err != nil {
			return err
		}
	}
	if err := s.team.Remove(ctx, eventID, memberID); err != nil {
		return fmt.Errorf("service.TeamService.Remove: %w", err)
	}
	return nil
}

func (s *TeamService) requireOtherAdmin(ctx context.Context, eventID uuid.UUID) error {
	n, err := s.team.CountAdmins(ctx, eventID)
	if err != nil {
		return fmt.Errorf("service.TeamService: count admins: %w", err)
	}
	if n <= 1 {
		return fmt.Errorf("%w: an event must keep at least one admin", domain.ErrValidation)
	}
	return nil
}
