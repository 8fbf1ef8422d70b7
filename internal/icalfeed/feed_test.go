package icalfeed_test

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/icalfeed"
)

var stamp = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func TestEncode_DatedEvent(t *testing.T) {
	e := domain.Event{
		ID:        uuid.New(),
		Kind:      domain.KindEvent,
		Title:     "Beach Trip",
		Location:  "Cartagena",
		StartDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 12, 23, 59, 59, 0, time.UTC),
	}

	out, err := icalfeed.Encode([]domain.Event{e}, stamp)
	require.NoError(t, err)

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)

	ve := events[0]
	assert.Equal(t, icalfeed.UID(e), ve.GetProperty(ical.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "Beach Trip", ve.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "Cartagena", ve.GetProperty(ical.ComponentPropertyLocation).Value)
	assert.Equal(t, "20250710", ve.GetProperty(ical.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20250713", ve.GetProperty(ical.ComponentPropertyDtEnd).Value, "DTEND is exclusive")
	assert.Nil(t, ve.GetProperty(ical.ComponentPropertyRrule))
}

func TestEncode_RoutineRecursDaily(t *testing.T) {
	e := domain.Event{
		ID:        uuid.New(),
		Kind:      domain.KindRoutine,
		Title:     "Meditate",
		StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 1, 23, 59, 59, 0, time.UTC),
	}

	out, err := icalfeed.Encode([]domain.Event{e}, stamp)
	require.NoError(t, err)

	assert.Contains(t, out, "RRULE:FREQ=DAILY")
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "PRODID:"+icalfeed.ProductID)
}

func TestEncode_Empty(t *testing.T) {
	out, err := icalfeed.Encode(nil, stamp)

	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
