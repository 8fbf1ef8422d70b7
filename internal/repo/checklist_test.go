package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/domain"
)

func TestChecklistRepo_CategoryLifecycle(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	e := createEvent(t, r, eventFixture())

	cat, err := r.checklist.CreateCategory(ctx, domain.Category{EventID: e.ID, Name: "Food"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, cat.ID)
	assert.Empty(t, cat.Items)

	renamed, err := r.checklist.RenameCategory(ctx, cat.ID, "Snacks")
	require.NoError(t, err)
	assert.Equal(t, "Snacks", renamed.Name)

	require.NoError(t, r.checklist.DeleteCategory(ctx, cat.ID))
	_, err = r.checklist.GetCategory(ctx, cat.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChecklistRepo_Items(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	e := createEvent(t, r, eventFixture())
	cat, err := r.checklist.CreateCategory(ctx, domain.Category{EventID: e.ID, Name: "Gear"})
	require.NoError(t, err)

	low, err := r.checklist.CreateItem(ctx, domain.Item{CategoryID: cat.ID, Title: "Book", Priority: domain.PriorityLow})
	require.NoError(t, err)
	high, err := r.checklist.CreateItem(ctx, domain.Item{CategoryID: cat.ID, Title: "Passport", Priority: domain.PriorityHigh})
	require.NoError(t, err)

	eventID, err := r.checklist.ItemEventID(ctx, low.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, eventID)

	done, err := r.checklist.SetItemCompleted(ctx, high.ID, true)
	require.NoError(t, err)
	assert.True(t, done.Completed)

	low.Title = "Novel"
	low.Priority = domain.PriorityMedium
	updated, err := r.checklist.UpdateItem(ctx, low)
	require.NoError(t, err)
	assert.Equal(t, "Novel", updated.Title)
	assert.Equal(t, domain.PriorityMedium, updated.Priority)

	cats, err := r.checklist.ListByEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Len(t, cats[0].Items, 2)
	assert.Equal(t, "Passport", cats[0].Items[0].Title, "high priority first")

	require.NoError(t, r.checklist.DeleteItem(ctx, high.ID))
	assert.ErrorIs(t, r.checklist.DeleteItem(ctx, high.ID), domain.ErrNotFound)
}

func TestChecklistRepo_ItemEventID_NotFound(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.checklist.ItemEventID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
