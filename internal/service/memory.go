package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
)

// MemoryService manages photos and videos attached to events and the emoji
// reactions on them.
type MemoryService struct {
	team     repo.TeamRepo
	memories repo.MemoryRepo
}

// NewMemoryService constructs a MemoryService backed by the provided repos.
func NewMemoryService(team repo.TeamRepo, memories repo.MemoryRepo) *MemoryService {
	return &MemoryService{team: team, memories: memories}
}

// Create attaches an already uploaded file to an event. Editors and admins only.
func (s *MemoryService) Create(ctx context.Context, userID string, m domain.Memory) (domain.Memory, error) {
	m.URL = strings.TrimSpace(m.URL)
	u, err := url.Parse(m.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.Memory{}, fmt.Errorf("%w: url must be an absolute http(s) URL", domain.ErrValidation)
	}
	if m.Type == "" {
		m.Type = domain.MediaImage
	}
	if m.Type != domain.MediaImage && m.Type != domain.MediaVideo {
		return domain.Memory{}, fmt.Errorf("%w: type must be image or video", domain.ErrValidation)
	}
	if _, err := authorize(ctx, s.team, m.EventID, userID, domain.RoleEditor); err != nil {
		return domain.Memory{}, fmt.Errorf("service.MemoryService.Create: %w", err)
	}

	m.Alt = strings.TrimSpace(m.Alt)
	m.UploadedByID = userID
	result, err := s.memories.Create(ctx, m)
	if err != nil {
		return domain.Memory{}, fmt.Errorf("service.MemoryService.Create: %w", err)
	}
	return result, nil
}

// List returns one page of the event's memories, newest first, with reactions.
func (s *MemoryService) List(ctx context.Context, userID string, eventID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Memory], error) {
	if _, err := authorize(ctx, s.team, eventID, userID, domain.RoleViewer); err != nil {
		return domain.Page[domain.Memory]{}, fmt.Errorf("service.MemoryService.List: %w", err)
	}
	items, total, err := s.memories.ListByEventPaged(ctx, eventID, p)
	if err != nil {
		return domain.Page[domain.Memory]{}, fmt.Errorf("service.MemoryService.List: %w", err)
	}
	if items == nil {
		items = []domain.Memory{}
	}
	return domain.Page[domain.Memory]{Items: items, Total: total, Params: p}, nil
}

// Delete removes a memory. The uploader or an event admin may delete.
func (s *MemoryService) Delete(ctx context.Context, userID string, memoryID uuid.UUID) error {
	m, err := s.memories.GetByID(ctx, memoryID)
	if err != nil {
		return fmt.Errorf("service.MemoryService.Delete: %w", err)
	}
	member, err := authorize(ctx, s.team, m.EventID, userID, domain.RoleViewer)
	if err != nil {
		return fmt.Errorf("service.MemoryService.Delete: %w", err)
	}
	if m.UploadedByID != userID && member.Role != domain.RoleAdmin {
		return fmt.Errorf("service.MemoryService.Delete: %w: only the uploader or an admin may delete", domain.ErrForbidden)
	}
	if err := s.memories.Delete(ctx, memoryID); err != nil {
		return fmt.Errorf("service.MemoryService.Delete: %w", err)
	}
	return nil
}

// React toggles the caller's reaction on a memory: the same emoji again
// removes it, a different emoji replaces it, and no previous reaction adds one.
func (s *MemoryService) React(ctx context.Context, userID string, memoryID uuid.UUID, emoji string) (domain.ToggleAction, error) {
	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		return "", fmt.Errorf("%w: emoji is required", domain.ErrValidation)
	}
	m, err := s.memories.GetByID(ctx, memoryID)
	if err != nil {
		return "", fmt.Errorf("service.MemoryService.React: %w", err)
	}
	if _, err := authorize(ctx, s.team, m.EventID, userID, domain.RoleViewer); err != nil {
		return "", fmt.Errorf("service.MemoryService.React: %w", err)
	}

	current, err := s.memories.GetReaction(ctx, memoryID, userID)
	switch {
	case err == nil && current.Emoji == emoji:
		if err := s.memories.DeleteReaction(ctx, memoryID, userID); err != nil {
			return "", fmt.Errorf("service.MemoryService.React: %w", err)
		}
		return domain.ActionRemoved, nil
	case err == nil:
		if err := s.memories.PutReaction(ctx, domain.Reaction{MemoryID: memoryID, UserID: userID, Emoji: emoji}); err != nil {
			return "", fmt.Errorf("service.MemoryService.React: %w", err)
		}
		return domain.ActionReplaced, nil
	case isNotFound(err):
		if err := s.memories.PutReaction(ctx, domain.Reaction{MemoryID: memoryID, UserID: userID, Emoji: emoji}); err != nil {
			return "", fmt.Errorf("service.MemoryService.React: %w", err)
		}
		return domain.ActionAdded, nil
	default:
		return "", fmt.Errorf("service.MemoryService.React: %w", err)
	}
}
