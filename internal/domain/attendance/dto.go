package attendance

import (
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockRequest struct {
	UserID string `json:"user_id"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateEventRequest is a manual punch entered by a supervisor, e.g. to fix
// a missed badge-in at the site gate.
type CreateEventRequest struct {
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"` // RFC3339
	Type      string `json:"type"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC3339 datetime",
		})
	}

	if !validator.IsInSlice(r.Type, EventTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be 'in' or 'out'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEventsFilter struct {
	UserID    string
	StartDate string // "2006-01-02"
	EndDate   string // "2006-01-02"
}

func (r *ListEventsFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	var start, end time.Time
	var ok bool
	if start, ok = validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if end, ok = validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if len(errs) == 0 && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
}

type ListEventsResponse struct {
	TotalCount int             `json:"total_count"`
	Events     []EventResponse `json:"events"`
}
