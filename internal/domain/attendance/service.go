package attendance

import "context"

// AttendanceService captures raw clock punches. All derived time accounting
// (sessions, delays, overtime) lives in the report service; this service only
// records and lists events.
type AttendanceService interface {
	// ClockIn records an "in" punch at the current instant.
	ClockIn(ctx context.Context, req ClockRequest) (EventResponse, error)

	// ClockOut records an "out" punch at the current instant.
	ClockOut(ctx context.Context, req ClockRequest) (EventResponse, error)

	// CreateEvent records a manual punch with an explicit timestamp.
	CreateEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error)

	// ListEvents returns a worker's punches in a date range, oldest first.
	ListEvents(ctx context.Context, filter ListEventsFilter) (ListEventsResponse, error)

	// DeleteEvent removes a punch.
	DeleteEvent(ctx context.Context, id string) error
}
