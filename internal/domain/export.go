package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per checklist item, with event
// fields repeated for every item on that event. Events with no items yield
// one row with empty checklist fields.
type ExportRow struct {
	// Event fields, repeated for every item on the event.
	EventID    string
	EventTitle string
	EventKind  string
	StartDate  string // "2006-01-02"
	EndDate    string // "2006-01-02"
	Location   string

	// Checklist fields, empty when the event has no items.
	Category  string
	Item      string
	Priority  string
	Completed bool
}
