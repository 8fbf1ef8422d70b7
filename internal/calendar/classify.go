package calendar

import (
	"math"
	"time"

	"github.com/pkordes/event-planner/internal/domain"
)

// Bucket is one of the three dashboard groupings.
type Bucket string

const (
	BucketActive     Bucket = "active"
	BucketPending    Bucket = "pending"
	BucketHistorical Bucket = "historical"
)

// Buckets is the result of Classify. Every input item lands in exactly one
// slice, and each slice keeps the input order.
type Buckets struct {
	Active     []domain.EventWindow
	Pending    []domain.EventWindow
	Historical []domain.EventWindow
}

// Len returns the total number of classified items.
func (b Buckets) Len() int {
	return len(b.Active) + len(b.Pending) + len(b.Historical)
}

// Classify partitions items into active, pending and historical relative to
// the UTC calendar day containing now.
//
// Routines are historical once completed today and active otherwise.
// Events are compared at day granularity: an event that ended before today is
// historical, one that starts after today is pending, anything else is active.
// Items are never reordered and inputs are not modified.
func Classify(now time.Time, items []domain.EventWindow) Buckets {
	today := DateOf(now).Midnight()

	b := Buckets{
		Active:     []domain.EventWindow{},
		Pending:    []domain.EventWindow{},
		Historical: []domain.EventWindow{},
	}
	for _, item := range items {
		switch bucketOf(today, item) {
		case BucketHistorical:
			b.Historical = append(b.Historical, item)
		case BucketPending:
			b.Pending = append(b.Pending, item)
		default:
			b.Active = append(b.Active, item)
		}
	}
	return b
}

// BucketOf classifies a single item relative to the UTC day containing now.
func BucketOf(now time.Time, item domain.EventWindow) Bucket {
	return bucketOf(DateOf(now).Midnight(), item)
}

func bucketOf(today time.Time, item domain.EventWindow) Bucket {
	if item.Kind == domain.KindRoutine {
		if item.CompletedToday {
			return BucketHistorical
		}
		return BucketActive
	}

	start := DateOf(item.StartBoundary).Midnight()
	end := start
	if !item.EndBoundary.IsZero() {
		end = DateOf(item.EndBoundary).Midnight()
	}

	switch {
	case end.Before(today):
		return BucketHistorical
	case start.After(today):
		return BucketPending
	default:
		return BucketActive
	}
}

// DaysRemaining returns ceil((start - now) / 24h).
//
// now keeps its time of day while start is a midnight boundary, so the result
// can be one higher than the calendar-day difference early in the day. This
// matches what the dashboard has always shown.
func DaysRemaining(now, start time.Time) int {
	days := start.Sub(now).Hours() / 24
	return int(math.Ceil(days))
}
