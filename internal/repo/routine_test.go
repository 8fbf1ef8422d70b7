package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/domain"
)

func TestRoutineRepo_Completions(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	routine := eventFixture()
	routine.Kind = domain.KindRoutine
	routine.Title = "Meditate"
	created := createEvent(t, r, routine)

	dayStart := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	_, err := r.routines.FindCompletion(ctx, created.ID, "owner-1", dayStart, dayEnd)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, r.routines.AddCompletion(ctx, created.ID, "owner-1", dayStart.Add(9*time.Hour)))

	id, err := r.routines.FindCompletion(ctx, created.ID, "owner-1", dayStart, dayEnd)
	require.NoError(t, err)

	done, err := r.routines.CompletedBetween(ctx, "owner-1", dayStart, dayEnd)
	require.NoError(t, err)
	assert.True(t, done[created.ID])

	done, err = r.routines.CompletedBetween(ctx, "owner-1", dayEnd, dayEnd.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, done[created.ID], "yesterday's completion does not count today")

	require.NoError(t, r.routines.DeleteCompletion(ctx, id))
	assert.ErrorIs(t, r.routines.DeleteCompletion(ctx, id), domain.ErrNotFound)
}

func TestRoutineRepo_CompletedBetween_ExcludesLaterDays(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	routine := eventFixture()
	routine.Kind = domain.KindRoutine
	created := createEvent(t, r, routine)

	dayStart := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	require.NoError(t, r.routines.AddCompletion(ctx, created.ID, "owner-1", dayEnd.Add(8*time.Hour)))

	done, err := r.routines.CompletedBetween(ctx, "owner-1", dayStart, dayEnd)
	require.NoError(t, err)
	assert.False(t, done[created.ID], "a completion on the next day is outside the window")

	require.NoError(t, r.routines.AddCompletion(ctx, created.ID, "owner-1", dayEnd))
	done, err = r.routines.CompletedBetween(ctx, "owner-1", dayStart, dayEnd)
	require.NoError(t, err)
	assert.False(t, done[created.ID], "the upper bound is exclusive")
}

func TestRoutineRepo_AddCompletion_OncePerDay(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	routine := eventFixture()
	routine.Kind = domain.KindRoutine
	created := createEvent(t, r, routine)

	dayStart := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	require.NoError(t, r.routines.AddCompletion(ctx, created.ID, "owner-1", dayStart.Add(9*time.Hour)))
	require.NoError(t, r.routines.AddCompletion(ctx, created.ID, "owner-1", dayStart.Add(21*time.Hour)),
		"a second completion on the same UTC day is ignored")

	id, err := r.routines.FindCompletion(ctx, created.ID, "owner-1", dayStart, dayEnd)
	require.NoError(t, err)
	require.NoError(t, r.routines.DeleteCompletion(ctx, id))

	_, err = r.routines.FindCompletion(ctx, created.ID, "owner-1", dayStart, dayEnd)
	assert.ErrorIs(t, err, domain.ErrNotFound, "one delete unchecks the day")

	require.NoError(t, r.routines.AddCompletion(ctx, created.ID, "owner-2", dayStart.Add(9*time.Hour)),
		"other users complete independently")
	require.NoError(t, r.routines.AddCompletion(ctx, created.ID, "owner-1", dayEnd.Add(9*time.Hour)),
		"the next day is a new completion")
}
