package attendance

import (
	"context"
	"time"
)

// EventRepository defines data access for raw clock punches.
// ListByUserAndRange makes no ordering promise; consumers sort.
type EventRepository interface {
	// Create persists a new punch and returns it with server-side fields set.
	Create(ctx context.Context, event Event) (Event, error)

	// GetByID retrieves a single punch.
	GetByID(ctx context.Context, id string) (Event, error)

	// GetLastEvent returns the most recent punch for a worker, or nil when
	// the worker has never punched.
	GetLastEvent(ctx context.Context, userID string) (*Event, error)

	// ListByUserAndRange returns all punches for a worker whose timestamp
	// falls within [start, end], in no particular order.
	ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]Event, error)

	// Delete removes a punch.
	Delete(ctx context.Context, id string) error
}
