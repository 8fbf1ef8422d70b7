package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
)

// ItemInput is a checklist item as submitted by a client. Priority is free
// text and goes through domain.ParsePriority.
type ItemInput struct {
	Title        string
	Priority     string
	AssignedToID string
}

// ChecklistService implements business logic for checklist categories and items.
// Reads need viewer access to the event; writes need editor access.
type ChecklistService struct {
	team      repo.TeamRepo
	checklist repo.ChecklistRepo
}

// NewChecklistService constructs a ChecklistService backed by the provided repos.
func NewChecklistService(team repo.TeamRepo, checklist repo.ChecklistRepo) *ChecklistService {
	return &ChecklistService{team: team, checklist: checklist}
}

// List returns the event's categories with their items, high priority first.
func (s *ChecklistService) List(ctx context.Context, userID string, eventID uuid.UUID) ([]domain.Category, error) {
	if _, err := authorize(ctx, s.team, eventID, userID, domain.RoleViewer); err != nil {
		return nil, fmt.Errorf("service.ChecklistService.List: %w", err)
	}
	cats, err := s.checklist.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service.ChecklistService.List: %w", err)
	}
	if cats == nil {
		return []domain.Category{}, nil
	}
	return cats, nil
}

// CreateCategory adds a named category to an event.
func (s *ChecklistService) CreateCategory(ctx context.Context, userID string, eventID uuid.UUID, name, color string) (domain.Category, error) {
	name, err := requireText("name", name, 1)
	if err != nil {
		return domain.Category{}, err
	}
	if color != "" && !colorPattern.MatchString(color) {
		return domain.Category{}, fmt.Errorf("%w: color must be a #RRGGBB hex value", domain.ErrValidation)
	}
	if _, err := authorize(ctx, s.team, eventID, userID, domain.RoleEditor); err != nil {
		return domain.Category{}, fmt.Errorf("service.ChecklistService.CreateCategory: %w", err)
	}
	result, err := s.checklist.CreateCategory(ctx, domain.Category{EventID: eventID, Name: name, Color: color})
	if err != nil {
		return domain.Category{}, fmt.Errorf("service.ChecklistService.CreateCategory: %w", err)
	}
	return result, nil
}

// RenameCategory changes a category's name.
func (s *ChecklistService) RenameCategory(ctx context.Context, userID string, categoryID uuid.UUID, name string) (domain.Category, error) {
	name, err := requireText("name", name, 1)
	if err != nil {
		return domain.Category{}, err
	}
	if err := s.authorizeCategory(ctx, userID, categoryID); err != nil {
		return domain.Category{}, fmt.Errorf("service.ChecklistService.RenameCategory: %w", err)
	}
	result, err := s.checklist.RenameCategory(ctx, categoryID, name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("service.ChecklistService.RenameCategory: %w", err)
	}
	return result, nil
}

// DeleteCategory removes a category and its items.
func (s *ChecklistService) DeleteCategory(ctx context.Context, userID string, categoryID uuid.UUID) error {
	if err := s.authorizeCategory(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("service.ChecklistService.DeleteCategory: %w", err)
	}
	if err := s.checklist.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("service.ChecklistService.DeleteCategory: %w", err)
	}
	return nil
}

// CreateItem adds an item to a category. Unknown priorities become medium.
func (s *ChecklistService) CreateItem(ctx context.Context, userID string, categoryID uuid.UUID, in ItemInput) (domain.Item, error) {
	title, err := requireText("title", in.Title, 1)
	if err != nil {
		return domain.Item{}, err
	}
	if err := s.authorizeCategory(ctx, userID, categoryID); err != nil {
		return domain.Item{}, fmt.Errorf("service.ChecklistService.CreateItem: %w", err)
	}
	result, err := s.checklist.CreateItem(ctx, domain.Item{
		CategoryID:   categoryID,
		Title:        title,
		Priority:     domain.ParsePriority(in.Priority),
		AssignedToID: in.AssignedToID,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ChecklistService.CreateItem: %w", err)
	}
	return result, nil
}

// UpdateItem overwrites an item's title, priority and assignee.
func (s *ChecklistService) UpdateItem(ctx context.Context, userID string, itemID uuid.UUID, in ItemInput) (domain.Item, error) {
	title, err := requireText("title", in.Title, 1)
	if err != nil {
		return domain.Item{}, err
	}
	if err := s.authorizeItem(ctx, userID, itemID); err != nil {
		return domain.Item{}, fmt.Errorf("service.ChecklistService.UpdateItem: %w", err)
	}
	result, err := s.checklist.UpdateItem(ctx, domain.Item{
		ID:           itemID,
		Title:        title,
		Priority:     domain.ParsePriority(in.Priority),
		AssignedToID: in.AssignedToID,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ChecklistService.UpdateItem: %w", err)
	}
	return result, nil
}

// SetItemCompleted marks an item done or not done.
func (s *ChecklistService) SetItemCompleted(ctx context.Context, userID string, itemID uuid.UUID, completed bool) (domain.Item, error) {
	if err := s.authorizeItem(ctx, userID, itemID); err != nil {
		return domain.Item{}, fmt.Errorf("service.ChecklistService.SetItemCompleted: %w", err)
	}
	result, err := s.checklist.SetItemCompleted(ctx, itemID, completed)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ChecklistService.SetItemCompleted: %w", err)
	}
	return result, nil
}

// DeleteItem removes an item.
func (s *ChecklistService) DeleteItem(ctx context.Context, userID string, itemID uuid.UUID) error {
	if err := s.authorizeItem(ctx, userID, itemID); err != nil {
		return fmt.Errorf("service.ChecklistService.DeleteItem: %w", err)
	}
	if err := s.checklist.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("service.ChecklistService.DeleteItem: %w", err)
	}
	return nil
}

func (s *ChecklistService) authorizeCategory(ctx context.Context, userID string, categoryID uuid.UUID) error {
	cat, err := s.checklist.GetCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	_, err = authorize(ctx, s.team, cat.EventID, userID, domain.RoleEditor)
	return err
}

func (s *ChecklistService) authorizeItem(ctx context.Context, userID string, itemID uuid.UUID) error {
	eventID, err := s.checklist.ItemEventID(ctx, itemID)
	if err != nil {
		return err
	}
	_, err = authorize(ctx, s.team, eventID, userID, domain.RoleEditor)
	return err
}
