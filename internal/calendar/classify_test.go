package calendar_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/domain"
)

// ---- helpers ---------------------------------------------------------------

func day(y int, m time.Month, d int) calendar.CalendarDate {
	return calendar.CalendarDate{Year: y, Month: m, Day: d}
}

func event(title string, start, end calendar.CalendarDate) domain.EventWindow {
	return domain.EventWindow{
		ID:            uuid.New(),
		Kind:          domain.KindEvent,
		Title:         title,
		StartBoundary: start.Midnight(),
		EndBoundary:   end.At(23, 59, 59),
	}
}

func routine(title string, completed bool) domain.EventWindow {
	return domain.EventWindow{
		ID:             uuid.New(),
		Kind:           domain.KindRoutine,
		Title:          title,
		CompletedToday: completed,
	}
}

func titles(items []domain.EventWindow) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

// ---- Classify --------------------------------------------------------------

// TestClassify_ExampleScenario walks the dashboard example from the product
// notes: one active, one pending, one historical event and two routines.
func TestClassify_ExampleScenario(t *testing.T) {
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	b := event("B", day(2024, 6, 20), day(2024, 6, 20))
	items := []domain.EventWindow{
		event("A", day(2024, 6, 10), day(2024, 6, 17)),
		b,
		event("C", day(2024, 6, 1), day(2024, 6, 5)),
		routine("D", true),
		routine("E", false),
	}

	got := calendar.Classify(now, items)

	assert.Equal(t, []string{"A", "E"}, titles(got.Active))
	assert.Equal(t, []string{"B"}, titles(got.Pending))
	assert.Equal(t, []string{"C", "D"}, titles(got.Historical))
	assert.Equal(t, 5, calendar.DaysRemaining(now, b.StartBoundary))
}

func TestClassify_TotalityAndExclusivity(t *testing.T) {
	now := time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC)
	var items []domain.EventWindow
	for offset := -10; offset <= 10; offset++ {
		start := calendar.DateOf(now).AddDays(offset)
		items = append(items,
			event("single", start, start),
			event("span", start, start.AddDays(3)),
			routine("routine", offset%2 == 0),
		)
	}

	got := calendar.Classify(now, items)

	require.Equal(t, len(items), got.Len())
	seen := map[uuid.UUID]int{}
	for _, bucket := range [][]domain.EventWindow{got.Active, got.Pending, got.Historical} {
		for _, it := range bucket {
			seen[it.ID]++
		}
	}
	require.Len(t, seen, len(items))
	for id, n := range seen {
		assert.Equal(t, 1, n, "item %s classified %d times", id, n)
	}
}

// TestClassify_SingleDayEventToday verifies boundary inclusivity: an event
// that starts and ends today is active at any time of the day.
func TestClassify_SingleDayEventToday(t *testing.T) {
	today := day(2024, 6, 15)
	items := []domain.EventWindow{event("today", today, today)}

	for _, now := range []time.Time{
		today.At(0, 0, 0),
		today.At(12, 0, 0),
		today.At(23, 59, 59),
	} {
		got := calendar.Classify(now, items)
		assert.Equal(t, []string{"today"}, titles(got.Active), "now=%s", now)
	}
}

func TestClassify_EdgeDays(t *testing.T) {
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		item domain.EventWindow
		want calendar.Bucket
	}{
		{"ended yesterday", event("x", day(2024, 6, 10), day(2024, 6, 14)), calendar.BucketHistorical},
		{"ends today", event("x", day(2024, 6, 10), day(2024, 6, 15)), calendar.BucketActive},
		{"starts today", event("x", day(2024, 6, 15), day(2024, 6, 20)), calendar.BucketActive},
		{"starts tomorrow", event("x", day(2024, 6, 16), day(2024, 6, 16)), calendar.BucketPending},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calendar.BucketOf(now, tc.item))
		})
	}
}

// TestClassify_UsesUTCDay verifies that comparisons use the UTC calendar day of
// now, not the wall clock of whatever zone now happens to be expressed in.
func TestClassify_UsesUTCDay(t *testing.T) {
	// 21:00 on June 14th at UTC-5 is already June 15th in UTC.
	now := time.Date(2024, 6, 14, 21, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	item := event("x", day(2024, 6, 15), day(2024, 6, 15))

	assert.Equal(t, calendar.BucketActive, calendar.BucketOf(now, item))
}

func TestClassify_RoutinesAreNeverPending(t *testing.T) {
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

	done := routine("done", true)
	todo := routine("todo", false)
	// Routine boundaries are ignored even when they lie in the future.
	todo.StartBoundary = day(2030, 1, 1).Midnight()
	todo.EndBoundary = day(2030, 1, 1).At(23, 59, 59)

	got := calendar.Classify(now, []domain.EventWindow{done, todo})

	assert.Empty(t, got.Pending)
	assert.Equal(t, []string{"todo"}, titles(got.Active))
	assert.Equal(t, []string{"done"}, titles(got.Historical))
}

func TestClassify_PreservesInputOrder(t *testing.T) {
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	items := []domain.EventWindow{
		event("z", day(2024, 7, 1), day(2024, 7, 1)),
		event("a", day(2024, 6, 20), day(2024, 6, 20)),
		event("m", day(2024, 8, 1), day(2024, 8, 1)),
	}

	got := calendar.Classify(now, items)

	assert.Equal(t, []string{"z", "a", "m"}, titles(got.Pending))
}

// TestClassify_MalformedWindowIsActive verifies that an event whose end lies
// before its start does not panic and lands in active when today falls
// between the two.
func TestClassify_MalformedWindowIsActive(t *testing.T) {
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	bad := event("bad", day(2024, 6, 10), day(2024, 6, 20))
	bad.StartBoundary, bad.EndBoundary = bad.EndBoundary, bad.StartBoundary

	got := calendar.Classify(now, []domain.EventWindow{bad})

	assert.Equal(t, []string{"bad"}, titles(got.Active))
}

func TestClassify_MissingEndUsesStart(t *testing.T) {
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	item := event("x", day(2024, 6, 15), day(2024, 6, 15))
	item.EndBoundary = time.Time{}

	assert.Equal(t, calendar.BucketActive, calendar.BucketOf(now, item))
}

func TestClassify_EmptyInputReturnsEmptyBuckets(t *testing.T) {
	got := calendar.Classify(time.Now(), nil)

	assert.NotNil(t, got.Active)
	assert.NotNil(t, got.Pending)
	assert.NotNil(t, got.Historical)
	assert.Zero(t, got.Len())
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	items := []domain.EventWindow{routine("r", false), event("e", day(2024, 6, 1), day(2024, 6, 2))}
	before := append([]domain.EventWindow(nil), items...)

	calendar.Classify(now, items)

	assert.Equal(t, before, items)
}

// ---- DaysRemaining ---------------------------------------------------------

func TestDaysRemaining(t *testing.T) {
	start := day(2024, 6, 20).Midnight()

	assert.Equal(t, 5, calendar.DaysRemaining(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), start))
	// Any time after midnight still rounds up to the same count.
	assert.Equal(t, 5, calendar.DaysRemaining(time.Date(2024, 6, 15, 0, 0, 1, 0, time.UTC), start))
	assert.Equal(t, 1, calendar.DaysRemaining(time.Date(2024, 6, 19, 23, 0, 0, 0, time.UTC), start))
	assert.Equal(t, 0, calendar.DaysRemaining(start, start))
}
