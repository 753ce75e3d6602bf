package report

import (
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
)

// Session is a paired in/out interval of on-site presence.
type Session struct {
	Start time.Time
	End   time.Time
}

// Duration returns the raw session length.
func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// SessionPairer turns a day's punches, already sorted ascending by timestamp,
// into on-site sessions.
type SessionPairer interface {
	Pair(events []attendance.Event) []Session
}

// FixedStridePairer walks the sorted punches two at a time from index 0.
// A pair is kept only when it reads in then out; anything else is dropped and
// the walk advances by two regardless. The stride never resynchronizes on a
// malformed sequence, so a single missing punch shifts every later pairing
// and that day under-counts instead of erroring. Payroll reviews flagged
// days by hand, so this stays the production behavior.
type FixedStridePairer struct{}

func (FixedStridePairer) Pair(events []attendance.Event) []Session {
	var sessions []Session
	for i := 0; i+1 < len(events); i += 2 {
		if events[i].Type == attendance.EventTypeIn && events[i+1].Type == attendance.EventTypeOut {
			sessions = append(sessions, Session{
				Start: events[i].Timestamp,
				End:   events[i+1].Timestamp,
			})
		}
	}
	return sessions
}
