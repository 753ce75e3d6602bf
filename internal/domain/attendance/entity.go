package attendance

import "time"

type EventType string

const (
	EventTypeIn  EventType = "in"
	EventTypeOut EventType = "out"
)

var EventTypeValues = []string{
	string(EventTypeIn),
	string(EventTypeOut),
}

// Event is a single raw clock punch. Timestamps are wall-clock instants in
// the company's local time; no timezone conversion is performed anywhere in
// the pipeline. Ordering is not guaranteed by the source.
type Event struct {
	ID        string
	UserID    string
	Timestamp time.Time
	Type      EventType
	CreatedAt time.Time

	// DTO / Join
	UserName *string
}
