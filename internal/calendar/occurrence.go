package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/pkordes/event-planner/internal/domain"
)

// MaxRangeDays bounds how many days Expand will cover in one call.
const MaxRangeDays = 366

// Occurrence is one appearance of an event or routine on the calendar.
// Dated events produce a single occurrence spanning their window; routines
// produce one full-day occurrence per day.
type Occurrence struct {
	EventID  uuid.UUID
	Kind     domain.EventKind
	Title    string
	Location string
	Color    string
	Start    time.Time
	End      time.Time
}

// Expand lists the occurrences of events that fall within [from, to],
// both ends inclusive. Routines recur daily from their start date.
// Results are ordered by start time, then title.
func Expand(events []domain.Event, from, to CalendarDate) ([]Occurrence, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end is before range start", domain.ErrValidation)
	}
	if to.Midnight().Sub(from.Midnight()) > MaxRangeDays*24*time.Hour {
		return nil, fmt.Errorf("%w: range must not exceed %d days", domain.ErrValidation, MaxRangeDays)
	}

	rangeStart := from.Midnight()
	rangeEnd := to.At(23, 59, 59)

	out := []Occurrence{}
	for _, e := range events {
		if e.Kind == domain.KindRoutine {
			occ, err := expandRoutine(e, rangeStart, to.Midnight())
			if err != nil {
				return nil, err
			}
			out = append(out, occ...)
			continue
		}
		if e.EndDate.Before(rangeStart) || e.StartDate.After(rangeEnd) {
			continue
		}
		out = append(out, occurrenceOf(e, e.StartDate, e.EndDate))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

// DailyRule returns the recurrence rule for a routine starting on e's start date.
func DailyRule(e domain.Event) (*rrule.RRule, error) {
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: DateOf(e.StartDate).Midnight(),
	})
	if err != nil {
		return nil, fmt.Errorf("calendar.DailyRule: %w", err)
	}
	return r, nil
}

func expandRoutine(e domain.Event, after, before time.Time) ([]Occurrence, error) {
	r, err := DailyRule(e)
	if err != nil {
		return nil, err
	}
	days := r.Between(after, before, true)
	out := make([]Occurrence, 0, len(days))
	for _, day := range days {
		d := DateOf(day)
		out = append(out, occurrenceOf(e, d.Midnight(), d.At(23, 59, 59)))
	}
	return out, nil
}

func occurrenceOf(e domain.Event, start, end time.Time) Occurrence {
	return Occurrence{
		EventID:  e.ID,
		Kind:     e.Kind,
		Title:    e.Title,
		Location: e.Location,
		Color:    e.Color,
		Start:    start,
		End:      end,
	}
}
