package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events []attendance.Event
}

func (f *fakeEventRepo) Create(ctx context.Context, ev attendance.Event) (attendance.Event, error) {
	ev.CreatedAt = time.Now()
	f.events = append(f.events, ev)
	return ev, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (attendance.Event, error) {
	for _, ev := range f.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return attendance.Event{}, attendance.ErrEventNotFound
}

func (f *fakeEventRepo) GetLastEvent(ctx context.Context, userID string) (*attendance.Event, error) {
	var last *attendance.Event
	for i := range f.events {
		ev := f.events[i]
		if ev.UserID != userID {
			continue
		}
		if last == nil || ev.Timestamp.After(last.Timestamp) {
			last = &ev
		}
	}
	return last, nil
}

func (f *fakeEventRepo) ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.Event, error) {
	var out []attendance.Event
	for _, ev := range f.events {
		if ev.UserID == userID && !ev.Timestamp.Before(start) && !ev.Timestamp.After(end) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	for i, ev := range f.events {
		if ev.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return attendance.ErrEventNotFound
}

func newTestService(repo *fakeEventRepo, now time.Time) attendance.AttendanceService {
	svc := NewAttendanceService(repo).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestClockIn_FirstPunch(t *testing.T) {
	repo := &fakeEventRepo{}
	now := time.Date(2026, 3, 2, 8, 5, 0, 0, time.Local)
	svc := newTestService(repo, now)

	resp, err := svc.ClockIn(context.Background(), attendance.ClockRequest{UserID: "w1"})

	require.NoError(t, err)
	assert.Equal(t, "in", resp.Type)
	assert.Equal(t, "w1", resp.UserID)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, repo.events, 1)
}

func TestClockIn_TwiceRejected(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := newTestService(repo, time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local))

	_, err := svc.ClockIn(context.Background(), attendance.ClockRequest{UserID: "w1"})
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), attendance.ClockRequest{UserID: "w1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := newTestService(repo, time.Date(2026, 3, 2, 17, 30, 0, 0, time.Local))

	_, err := svc.ClockOut(context.Background(), attendance.ClockRequest{UserID: "w1"})

	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOut_AfterClockIn(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := newTestService(repo, time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local))

	_, err := svc.ClockIn(context.Background(), attendance.ClockRequest{UserID: "w1"})
	require.NoError(t, err)

	resp, err := svc.ClockOut(context.Background(), attendance.ClockRequest{UserID: "w1"})
	require.NoError(t, err)
	assert.Equal(t, "out", resp.Type)
}

func TestCreateEvent_ManualPunchSkipsAlternationGuard(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := newTestService(repo, time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))

	_, err := svc.ClockIn(context.Background(), attendance.ClockRequest{UserID: "w1"})
	require.NoError(t, err)

	// A second "in" is allowed when entered manually; that is the repair tool.
	resp, err := svc.CreateEvent(context.Background(), attendance.CreateEventRequest{
		UserID:    "w1",
		Timestamp: "2026-03-02T14:00:00-03:00",
		Type:      "in",
	})
	require.NoError(t, err)
	assert.Equal(t, "in", resp.Type)
}

func TestCreateEvent_InvalidPayload(t *testing.T) {
	svc := newTestService(&fakeEventRepo{}, time.Now())

	_, err := svc.CreateEvent(context.Background(), attendance.CreateEventRequest{
		UserID:    "",
		Timestamp: "yesterday",
		Type:      "lunch",
	})

	assert.Error(t, err)
}

func TestListEvents_SortedAscending(t *testing.T) {
	repo := &fakeEventRepo{events: []attendance.Event{
		{ID: "b", UserID: "w1", Timestamp: time.Date(2026, 3, 2, 17, 0, 0, 0, time.Local), Type: attendance.EventTypeOut},
		{ID: "a", UserID: "w1", Timestamp: time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local), Type: attendance.EventTypeIn},
		{ID: "c", UserID: "w2", Timestamp: time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local), Type: attendance.EventTypeIn},
	}}
	svc := newTestService(repo, time.Now())

	resp, err := svc.ListEvents(context.Background(), attendance.ListEventsFilter{
		UserID:    "w1",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, "a", resp.Events[0].ID)
	assert.Equal(t, "b", resp.Events[1].ID)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	svc := newTestService(&fakeEventRepo{}, time.Now())

	err := svc.DeleteEvent(context.Background(), "missing")

	assert.ErrorIs(t, err, attendance.ErrEventNotFound)
}
