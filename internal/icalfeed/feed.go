// Package icalfeed renders events as an iCalendar (RFC 5545) feed so they can
// be subscribed to from any calendar client.
package icalfeed

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/domain"
)

// ProductID identifies this service in the PRODID property.
const ProductID = "-//event-planner//calendar feed//EN"

// Encode serialises events as a PUBLISH calendar. Every event becomes an
// all-day VEVENT spanning its calendar days; routines carry a daily RRULE
// starting on their first day. stamp is written as DTSTAMP.
func Encode(events []domain.Event, stamp time.Time) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	for _, e := range events {
		if err := addEvent(cal, e, stamp); err != nil {
			return "", err
		}
	}
	return cal.Serialize(), nil
}

func addEvent(cal *ical.Calendar, e domain.Event, stamp time.Time) error {
	ve := cal.AddEvent(UID(e))
	ve.SetDtStampTime(stamp.UTC())
	ve.SetSummary(e.Title)
	if e.Description != "" {
		ve.SetDescription(e.Description)
	}
	if e.Location != "" {
		ve.SetLocation(e.Location)
	}

	first := calendar.DateOf(e.StartDate)
	if e.Kind == domain.KindRoutine {
		ve.SetAllDayStartAt(first.Midnight())
		ve.SetAllDayEndAt(first.AddDays(1).Midnight())

		rule, err := calendar.DailyRule(e)
		if err != nil {
			return fmt.Errorf("icalfeed.Encode: %s: %w", e.ID, err)
		}
		ve.SetProperty(ical.ComponentPropertyRrule, rule.OrigOptions.RRuleString())
		return nil
	}

	// DTEND of an all-day event is exclusive: the day after the last day.
	last := calendar.DateOf(e.EndDate)
	if last.Before(first) {
		last = first
	}
	ve.SetAllDayStartAt(first.Midnight())
	ve.SetAllDayEndAt(last.AddDays(1).Midnight())
	return nil
}

// UID returns the stable iCalendar UID for an event.
func UID(e domain.Event) string {
	return e.ID.String() + "@event-planner"
}
