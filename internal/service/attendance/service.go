package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/validator"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	eventRepo attendance.EventRepository
	now       func() time.Time
}

func NewAttendanceService(eventRepo attendance.EventRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	last, err := a.eventRepo.GetLastEvent(ctx, req.UserID)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to get last event: %w", err)
	}
	if last != nil && last.Type == attendance.EventTypeIn {
		return attendance.EventResponse{}, attendance.ErrAlreadyClockedIn
	}

	return a.record(ctx, req.UserID, a.now(), attendance.EventTypeIn)
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	last, err := a.eventRepo.GetLastEvent(ctx, req.UserID)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to get last event: %w", err)
	}
	if last == nil || last.Type != attendance.EventTypeIn {
		return attendance.EventResponse{}, attendance.ErrNotClockedIn
	}

	return a.record(ctx, req.UserID, a.now(), attendance.EventTypeOut)
}

// CreateEvent implements attendance.AttendanceService. Manual punches carry
// an explicit timestamp and skip the in/out alternation guard: supervisors
// use them precisely to repair broken sequences.
func (a *AttendanceServiceImpl) CreateEvent(ctx context.Context, req attendance.CreateEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	ts, _ := validator.IsValidDateTime(req.Timestamp)
	return a.record(ctx, req.UserID, ts, attendance.EventType(req.Type))
}

func (a *AttendanceServiceImpl) record(ctx context.Context, userID string, ts time.Time, typ attendance.EventType) (attendance.EventResponse, error) {
	event := attendance.Event{
		ID:        uuid.NewString(),
		UserID:    userID,
		Timestamp: ts,
		Type:      typ,
	}

	created, err := a.eventRepo.Create(ctx, event)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return mapEventToResponse(created), nil
}

// ListEvents implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListEvents(ctx context.Context, filter attendance.ListEventsFilter) (attendance.ListEventsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListEventsResponse{}, err
	}

	// Dates are wall-clock local, like every timestamp in the pipeline.
	start, _ := time.ParseInLocation("2006-01-02", filter.StartDate, time.Local)
	end, _ := time.ParseInLocation("2006-01-02", filter.EndDate, time.Local)
	end = end.AddDate(0, 0, 1).Add(-time.Second) // whole end day, inclusive

	events, err := a.eventRepo.ListByUserAndRange(ctx, filter.UserID, start, end)
	if err != nil {
		return attendance.ListEventsResponse{}, fmt.Errorf("failed to list attendance events: %w", err)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	responses := make([]attendance.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, mapEventToResponse(ev))
	}

	return attendance.ListEventsResponse{
		TotalCount: len(responses),
		Events:     responses,
	}, nil
}

// DeleteEvent implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	if err := a.eventRepo.Delete(ctx, id); err != nil {
		if err == attendance.ErrEventNotFound {
			return attendance.ErrEventNotFound
		}
		return fmt.Errorf("failed to delete attendance event: %w", err)
	}
	return nil
}

func mapEventToResponse(ev attendance.Event) attendance.EventResponse {
	var userName string
	if ev.UserName != nil {
		userName = *ev.UserName
	}

	return attendance.EventResponse{
		ID:        ev.ID,
		UserID:    ev.UserID,
		UserName:  userName,
		Timestamp: ev.Timestamp.Format(time.RFC3339),
		Type:      string(ev.Type),
	}
}
