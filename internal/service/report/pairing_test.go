package report

import (
	"testing"
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func punch(t *testing.T, typ attendance.EventType, hhmm string) attendance.Event {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", "2026-03-02 "+hhmm, time.Local)
	assert.NoError(t, err)
	return attendance.Event{ID: hhmm, UserID: "w1", Timestamp: ts, Type: typ}
}

func TestFixedStridePairer_WellFormedDay(t *testing.T) {
	events := []attendance.Event{
		punch(t, attendance.EventTypeIn, "08:00"),
		punch(t, attendance.EventTypeOut, "13:00"),
		punch(t, attendance.EventTypeIn, "14:00"),
		punch(t, attendance.EventTypeOut, "18:00"),
	}

	sessions := FixedStridePairer{}.Pair(events)

	assert.Len(t, sessions, 2)
	assert.Equal(t, 5*time.Hour, sessions[0].Duration())
	assert.Equal(t, 4*time.Hour, sessions[1].Duration())
}

func TestFixedStridePairer_RejectsMalformedPair(t *testing.T) {
	// in, in, out: pair (0,1) reads in then in and is dropped; the walk jumps to
	// index 2, which has no partner. Nothing pairs.
	events := []attendance.Event{
		punch(t, attendance.EventTypeIn, "08:00"),
		punch(t, attendance.EventTypeIn, "09:00"),
		punch(t, attendance.EventTypeOut, "17:00"),
	}

	sessions := FixedStridePairer{}.Pair(events)

	assert.Empty(t, sessions)
}

func TestFixedStridePairer_MissingPunchShiftsEveryLaterPair(t *testing.T) {
	// The worker forgot the morning clock-out. The stride does not
	// resynchronize, so the afternoon session is mis-paired away too even
	// though well-formed pairs exist from index 1 onward.
	events := []attendance.Event{
		punch(t, attendance.EventTypeIn, "08:00"),
		punch(t, attendance.EventTypeIn, "14:00"),
		punch(t, attendance.EventTypeOut, "18:00"),
	}

	sessions := FixedStridePairer{}.Pair(events)

	assert.Empty(t, sessions, "a single missing punch must discard the rest of the day, not recover")
}

func TestFixedStridePairer_OutFirstSkipsPair(t *testing.T) {
	events := []attendance.Event{
		punch(t, attendance.EventTypeOut, "08:00"),
		punch(t, attendance.EventTypeIn, "09:00"),
		punch(t, attendance.EventTypeIn, "10:00"),
		punch(t, attendance.EventTypeOut, "12:00"),
	}

	sessions := FixedStridePairer{}.Pair(events)

	assert.Len(t, sessions, 1)
	assert.Equal(t, 2*time.Hour, sessions[0].Duration())
}

func TestFixedStridePairer_NoEvents(t *testing.T) {
	assert.Empty(t, FixedStridePairer{}.Pair(nil))
	assert.Empty(t, FixedStridePairer{}.Pair([]attendance.Event{punch(t, attendance.EventTypeIn, "08:00")}))
}
