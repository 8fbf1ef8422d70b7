package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
	"github.com/pkordes/event-planner/testutil"
)

// repos bundles every repo over one rolled-back transaction.
type repos struct {
	events        repo.EventRepo
	team          repo.TeamRepo
	checklist     repo.ChecklistRepo
	memories      repo.MemoryRepo
	routines      repo.RoutineRepo
	notifications repo.NotificationRepo
}

func newTestRepos(t *testing.T) repos {
	t.Helper()
	tx := testutil.NewTx(t)
	return repos{
		events:        repo.NewEventRepo(tx),
		team:          repo.NewTeamRepo(tx),
		checklist:     repo.NewChecklistRepo(tx),
		memories:      repo.NewMemoryRepo(tx),
		routines:      repo.NewRoutineRepo(tx),
		notifications: repo.NewNotificationRepo(tx),
	}
}

// eventFixture returns a three-day event owned by "owner-1".
func eventFixture() domain.Event {
	return domain.Event{
		Kind:        domain.KindEvent,
		Title:       "Beach Trip",
		Description: "Sun and sand",
		Location:    "Cartagena",
		Color:       "#3366ff",
		StartDate:   time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 7, 12, 23, 59, 59, 0, time.UTC),
		CreatedByID: "owner-1",
	}
}

func createEvent(t *testing.T, r repos, e domain.Event) domain.Event {
	t.Helper()
	got, err := r.events.Create(context.Background(), e, nil)
	require.NoError(t, err)
	return got
}

func TestEventRepo_Create(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	input := eventFixture()
	got, err := r.events.Create(ctx, input, []domain.CategoryInput{
		{Name: "Clothes", Items: []string{"Swimsuit", "Hat"}},
		{Name: "Documents"},
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, input.Title, got.Title)
	assert.Equal(t, domain.KindEvent, got.Kind)
	assert.True(t, got.StartDate.Equal(input.StartDate))
	assert.True(t, got.EndDate.Equal(input.EndDate))
	assert.Equal(t, time.UTC, got.StartDate.Location())
	assert.False(t, got.CreatedAt.IsZero())

	owner, err := r.team.Get(ctx, got.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, owner.Role)

	cats, err := r.checklist.ListByEvent(ctx, got.ID)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	var items int
	for _, c := range cats {
		items += len(c.Items)
		for _, it := range c.Items {
			assert.Equal(t, domain.PriorityMedium, it.Priority)
			assert.False(t, it.Completed)
		}
	}
	assert.Equal(t, 2, items)
}

func TestEventRepo_Create_RejectsInvertedWindow(t *testing.T) {
	r := newTestRepos(t)

	input := eventFixture()
	input.EndDate = input.StartDate.Add(-time.Second)

	_, err := r.events.Create(context.Background(), input, nil)

	assert.Error(t, err)
}

func TestEventRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.events.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepo_ListByUser(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	older := eventFixture()
	older.Title = "Older"
	newer := eventFixture()
	newer.Title = "Newer"
	newer.StartDate = newer.StartDate.AddDate(0, 1, 0)
	newer.EndDate = newer.EndDate.AddDate(0, 1, 0)
	other := eventFixture()
	other.CreatedByID = "someone-else"

	createEvent(t, r, older)
	createEvent(t, r, newer)
	createEvent(t, r, other)

	got, err := r.events.ListByUser(ctx, "owner-1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer", got[0].Title, "most recent start first")
	assert.Equal(t, "Older", got[1].Title)
}

func TestEventRepo_ListByUser_IncludesSharedEvents(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	e := createEvent(t, r, eventFixture())
	_, err := r.team.Add(ctx, domain.Collaborator{EventID: e.ID, UserID: "guest", Role: domain.RoleViewer})
	require.NoError(t, err)

	got, err := r.events.ListByUser(ctx, "guest")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e.ID, got[0].ID)
}

func TestEventRepo_ListByUserPaged(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	for i := range 3 {
		e := eventFixture()
		e.StartDate = e.StartDate.AddDate(0, 0, i)
		e.EndDate = e.EndDate.AddDate(0, 0, i)
		createEvent(t, r, e)
	}

	got, total, err := r.events.ListByUserPaged(ctx, "owner-1", domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, got, 1)
}

func TestEventRepo_ListStartingBetween(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	inRange := createEvent(t, r, eventFixture())
	routine := eventFixture()
	routine.Kind = domain.KindRoutine
	createEvent(t, r, routine)
	later := eventFixture()
	later.StartDate = later.StartDate.AddDate(0, 0, 1)
	createEvent(t, r, later)

	from := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	got, err := r.events.ListStartingBetween(ctx, from, from.AddDate(0, 0, 1))

	require.NoError(t, err)
	require.Len(t, got, 1, "routines and later events are excluded")
	assert.Equal(t, inRange.ID, got[0].ID)
}

func TestEventRepo_Update(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	created := createEvent(t, r, eventFixture())
	created.Title = "Mountain Trip"
	created.EndDate = created.EndDate.AddDate(0, 0, 2)

	got, err := r.events.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, "Mountain Trip", got.Title)
	assert.True(t, got.EndDate.Equal(created.EndDate))
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestEventRepo_Update_NotFound(t *testing.T) {
	r := newTestRepos(t)

	e := eventFixture()
	e.ID = uuid.New()
	_, err := r.events.Update(context.Background(), e)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepo_Delete(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	created := createEvent(t, r, eventFixture())

	require.NoError(t, r.events.Delete(ctx, created.ID))

	_, err := r.events.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = r.team.Get(ctx, created.ID, "owner-1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "collaborators cascade")
}

func TestEventRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepos(t)

	err := r.events.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
