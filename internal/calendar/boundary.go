// Package calendar holds the date arithmetic the rest of the planner relies on:
// turning a date picked by a user into stored UTC boundaries, and sorting
// events into active, pending and historical buckets relative to today.
//
// Everything here is pure. Nothing reads the clock; callers pass "now".
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/event-planner/internal/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CalendarDate is a year/month/day triple with no time of day and no zone.
// Two CalendarDates are equal iff all three fields match, so == is safe.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the UTC calendar date of t.
func DateOf(t time.Time) CalendarDate {
	u := t.UTC()
	return CalendarDate{Year: u.Year(), Month: u.Month(), Day: u.Day()}
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, s)
	}
	return DateOf(t), nil
}

// Midnight returns 00:00:00 UTC on d.
func (d CalendarDate) Midnight() time.Time {
	return d.At(0, 0, 0)
}

// At returns the UTC instant on d at the given time of day.
func (d CalendarDate) At(hours, minutes, seconds int) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hours, minutes, seconds, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative).
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Midnight().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than o.
func (d CalendarDate) Before(o CalendarDate) bool {
	return d.Midnight().Before(o.Midnight())
}

func (d CalendarDate) String() string {
	return d.Midnight().Format(DateLayout)
}

// inputLayouts are the wall-clock forms accepted by ParseDateInput, read in
// the caller's location. RFC 3339 instants are handled separately.
var inputLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DateLayout,
}

// ParseDateInput parses a user-submitted date with local-timezone semantics:
// bare dates and wall-clock times are read in loc, and full RFC 3339 instants
// are re-expressed in loc. A nil loc means UTC.
func ParseDateInput(input string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, input)
}

// NormalizeBoundary turns a date as picked by a user in loc into a UTC instant
// on the same calendar date at the requested time of day.
//
// The parsed value is shifted forward by loc's UTC offset at that instant, which
// cancels the local-to-UTC conversion done while parsing; the shifted value's
// UTC fields are the digits the user saw. Offsets are looked up per instant,
// so daylight saving transitions are respected.
func NormalizeBoundary(input string, loc *time.Location, hours, minutes, seconds int) (time.Time, error) {
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 {
		return time.Time{}, fmt.Errorf("%w: time of day %02d:%02d:%02d out of range",
			domain.ErrValidation, hours, minutes, seconds)
	}

	d, err := ParseDateInput(input, loc)
	if err != nil {
		return time.Time{}, err
	}

	_, offset := d.Zone()
	nominal := d.Add(time.Duration(offset) * time.Second).UTC()

	return time.Date(nominal.Year(), nominal.Month(), nominal.Day(), hours, minutes, seconds, 0, time.UTC), nil
}

// EventBoundaries normalizes the start and end of an event window.
// The start boundary is 00:00:00 on the start date and the end boundary is
// 23:59:59 on the end date. With no end date (nil or blank) the window closes
// at 23:59:59 on the start date, so every event has a non-null end.
//
// An end date before the start date is rejected with domain.ErrValidation.
func EventBoundaries(start string, end *string, loc *time.Location) (time.Time, time.Time, error) {
	startAt, err := NormalizeBoundary(start, loc, 0, 0, 0)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start date: %w", err)
	}

	endInput := start
	if end != nil && strings.TrimSpace(*end) != "" {
		endInput = *end
	}
	endAt, err := NormalizeBoundary(endInput, loc, 23, 59, 59)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end date: %w", err)
	}

	if endAt.Before(startAt) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}
	return startAt, endAt, nil
}
