package handler

import (
	"context"
	"errors"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/handler/gen"
	"github.com/pkordes/event-planner/internal/middleware"
	"github.com/pkordes/event-planner/internal/service"
)

// GetChecklist handles GET /events/{id}/checklist.
func (s *Server) GetChecklist(ctx context.Context, req gen.GetChecklistRequestObject) (gen.GetChecklistResponseObject, error) {
	cats, err := s.svc.Checklist.List(ctx, middleware.UserID(ctx), req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetChecklist404JSONResponse(notFoundBody("event not found")), nil
		}
		return nil, err
	}

	out := make(gen.GetChecklist200JSONResponse, len(cats))
	for i, c := range cats {
		out[i] = categoryToResponse(c)
	}
	return out, nil
}

// CreateCategory handles POST /events/{id}/checklist/categories.
func (s *Server) CreateCategory(ctx context.Context, req gen.CreateCategoryRequestObject) (gen.CreateCategoryResponseObject, error) {
	if req.Body == nil {
		return gen.CreateCategory422JSONResponse(requestBody("request body is required")), nil
	}

	c, err := s.svc.Checklist.CreateCategory(ctx, middleware.UserID(ctx), req.Id, req.Body.Name, deref(req.Body.Color))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CreateCategory404JSONResponse(notFoundBody("event not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.CreateCategory403JSONResponse(forbiddenBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateCategory422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateCategory201JSONResponse(categoryToResponse(c)), nil
}

// RenameCategory handles PUT /checklist/categories/{id}.
func (s *Server) RenameCategory(ctx context.Context, req gen.RenameCategoryRequestObject) (gen.RenameCategoryResponseObject, error) {
	if req.Body == nil {
		return gen.RenameCategory422JSONResponse(requestBody("request body is required")), nil
	}

	c, err := s.svc.Checklist.RenameCategory(ctx, middleware.UserID(ctx), req.Id, req.Body.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.RenameCategory404JSONResponse(notFoundBody("category not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.RenameCategory403JSONResponse(forbiddenBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.RenameCategory422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.RenameCategory200JSONResponse(categoryToResponse(c)), nil
}

// DeleteCategory handles DELETE /checklist/categories/{id}.
// Items in the category are removed with it.
func (s *Server) DeleteCategory(ctx context.Context, req gen.DeleteCategoryRequestObject) (gen.DeleteCategoryResponseObject, error) {
	err := s.svc.Checklist.DeleteCategory(ctx, middleware.UserID(ctx), req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteCategory404JSONResponse(notFoundBody("category not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.DeleteCategory403JSONResponse(forbiddenBody(err)), nil
		}
		return nil, err
	}

	return gen.DeleteCategory204Response{}, nil
}

// CreateItem handles POST /checklist/categories/{id}/items.
func (s *Server) CreateItem(ctx context.Context, req gen.CreateItemRequestObject) (gen.CreateItemResponseObject, error) {
	if req.Body == nil {
		return gen.CreateItem422JSONResponse(requestBody("request body is required")), nil
	}

	it, err := s.svc.Checklist.CreateItem(ctx, middleware.UserID(ctx), req.Id, itemInputFrom(req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CreateItem404JSONResponse(notFoundBody("category not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.CreateItem403JSONResponse(forbiddenBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateItem422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateItem201JSONResponse(itemToResponse(it)), nil
}

// UpdateItem handles PUT /checklist/items/{id}.
func (s *Server) UpdateItem(ctx context.Context, req gen.UpdateItemRequestObject) (gen.UpdateItemResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateItem422JSONResponse(requestBody("request body is required")), nil
	}

	it, err := s.svc.Checklist.UpdateItem(ctx, middleware.UserID(ctx), req.Id, itemInputFrom(req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateItem404JSONResponse(notFoundBody("item not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.UpdateItem403JSONResponse(forbiddenBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateItem422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateItem200JSONResponse(itemToResponse(it)), nil
}

// SetItemCompleted handles PUT /checklist/items/{id}/completed.
func (s *Server) SetItemCompleted(ctx context.Context, req gen.SetItemCompletedRequestObject) (gen.SetItemCompletedResponseObject, error) {
	if req.Body == nil || req.Body.Completed == nil {
		return gen.SetItemCompleted422JSONResponse(requestBody("completed is required")), nil
	}

	it, err := s.svc.Checklist.SetItemCompleted(ctx, middleware.UserID(ctx), req.Id, *req.Body.Completed)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.SetItemCompleted404JSONResponse(notFoundBody("item not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.SetItemCompleted403JSONResponse(forbiddenBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.SetItemCompleted422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.SetItemCompleted200JSONResponse(itemToResponse(it)), nil
}

// DeleteItem handles DELETE /checklist/items/{id}.
func (s *Server) DeleteItem(ctx context.Context, req gen.DeleteItemRequestObject) (gen.DeleteItemResponseObject, error) {
	err := s.svc.Checklist.DeleteItem(ctx, middleware.UserID(ctx), req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteItem404JSONResponse(notFoundBody("item not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.DeleteItem403JSONResponse(forbiddenBody(err)), nil
		}
		return nil, err
	}

	return gen.DeleteItem204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

func itemInputFrom(body *gen.ItemInput) service.ItemInput {
	return service.ItemInput{
		Title:        body.Title,
		Priority:     deref(body.Priority),
		AssignedToID: deref(body.AssignedToId),
	}
}

func categoryToResponse(c domain.Category) gen.Category {
	items := make([]gen.Item, len(c.Items))
	for i, it := range c.Items {
		items[i] = itemToResponse(it)
	}
	return gen.Category{
		Id:        c.ID,
		EventId:   c.EventID,
		Name:      c.Name,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		Items:     items,
	}
}

func itemToResponse(it domain.Item) gen.Item {
	return gen.Item{
		Id:           it.ID,
		CategoryId:   it.CategoryID,
		Title:        it.Title,
		Completed:    it.Completed,
		Priority:     gen.Priority(it.Priority),
		AssignedToId: optional(it.AssignedToID),
		CreatedAt:    it.CreatedAt,
	}
}
