package report

import (
	"context"
	"testing"
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/report"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/user"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events []attendance.Event
	err    error
}

func (f *fakeEventRepo) Create(ctx context.Context, ev attendance.Event) (attendance.Event, error) {
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
	if f.err != nil {
		return nil, f.err
	}
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

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func newTestService(events ...attendance.Event) report.ReportService {
	return NewReportService(
		&fakeEventRepo{events: events},
		&fakeUserRepo{users: map[string]user.User{
			"w1": {ID: "w1", Name: "Pedro Soto", RUT: "12345678-5", Role: user.RoleWorker},
		}},
		testSchedule(),
	)
}

func TestMonthlyAttendance_NoUserSelected(t *testing.T) {
	svc := newTestService()

	rep, err := svc.MonthlyAttendance(context.Background(), report.MonthlyReportRequest{
		Month: 3,
		Year:  2026,
	})

	assert.NoError(t, err)
	assert.Nil(t, rep, "no worker selected is an empty state, not a failure")
}

func TestMonthlyAttendance_InvalidMonth(t *testing.T) {
	svc := newTestService()

	_, err := svc.MonthlyAttendance(context.Background(), report.MonthlyReportRequest{
		UserID: "w1",
		Month:  13,
		Year:   2026,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "month")
}

func TestMonthlyAttendance_ComputesFromRepository(t *testing.T) {
	svc := newTestService(
		event(t, "w1", "2026-03-02 08:05", attendance.EventTypeIn),
		event(t, "w1", "2026-03-02 17:45", attendance.EventTypeOut),
	)

	rep, err := svc.MonthlyAttendance(context.Background(), report.MonthlyReportRequest{
		UserID: "w1",
		Month:  3,
		Year:   2026,
	})

	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Equal(t, "w1", rep.UserID)
	assert.Len(t, rep.DailySummaries, 31)
	assert.Equal(t, 1, rep.Summary.WorkedDays)
	assert.Equal(t, 5, rep.Summary.TotalDelayMinutes)
	assert.Equal(t, "00:15", rep.Summary.TotalOvertimeHours)
}

func TestMonthlyAttendance_RepeatedCallsAreIdentical(t *testing.T) {
	svc := newTestService(
		event(t, "w1", "2026-03-02 08:00", attendance.EventTypeIn),
		event(t, "w1", "2026-03-02 17:30", attendance.EventTypeOut),
		event(t, "w1", "2026-03-07 09:00", attendance.EventTypeIn),
		event(t, "w1", "2026-03-07 13:00", attendance.EventTypeOut),
	)
	req := report.MonthlyReportRequest{UserID: "w1", Month: 3, Year: 2026}

	first, err := svc.MonthlyAttendance(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.MonthlyAttendance(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExportMonthlyAttendance_NoUser(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.ExportMonthlyAttendance(context.Background(), report.MonthlyReportRequest{
		Month: 3,
		Year:  2026,
	})

	assert.ErrorIs(t, err, report.ErrReportGenerationFailed)
}
