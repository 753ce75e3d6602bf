package schedule

import (
	"strconv"
	"strings"
	"time"
)

// ShiftWindow is a wall-clock interval within a single day, "HH:mm" on both ends.
type ShiftWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StartAt anchors the window's start time onto the calendar day of t.
func (w ShiftWindow) StartAt(t time.Time) time.Time {
	return atClock(t, w.Start)
}

// EndAt anchors the window's end time onto the calendar day of t.
func (w ShiftWindow) EndAt(t time.Time) time.Time {
	return atClock(t, w.End)
}

// WorkSchedule is the static calendar configuration for the whole company:
// one shift per day class, an unpaid lunch window, and the recurring holiday
// set. It is loaded once at startup and never mutated afterwards.
type WorkSchedule struct {
	Weekdays   ShiftWindow
	Friday     ShiftWindow
	Saturday   ShiftWindow
	LunchBreak ShiftWindow

	// Holidays is keyed by "MM-dd". A date is a holiday when its month-day
	// matches, regardless of year.
	Holidays map[string]struct{}
}

// New builds a WorkSchedule from "HH:mm" windows and a list of "MM-dd"
// holiday strings.
func New(weekdays, friday, saturday, lunch ShiftWindow, holidays []string) *WorkSchedule {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		h = strings.TrimSpace(h)
		if h != "" {
			set[h] = struct{}{}
		}
	}
	return &WorkSchedule{
		Weekdays:   weekdays,
		Friday:     friday,
		Saturday:   saturday,
		LunchBreak: lunch,
		Holidays:   set,
	}
}

// Default returns the company's standard construction-site calendar:
// full shifts Monday through Thursday, a shorter Friday, a half Saturday,
// and the fixed Chilean public holidays.
func Default() *WorkSchedule {
	return New(
		ShiftWindow{Start: "08:00", End: "18:00"},
		ShiftWindow{Start: "08:00", End: "17:00"},
		ShiftWindow{Start: "09:00", End: "14:00"},
		ShiftWindow{Start: "13:00", End: "14:00"},
		[]string{
			"01-01", // Año Nuevo
			"05-01", // Día del Trabajo
			"05-21", // Glorias Navales
			"06-29", // San Pedro y San Pablo
			"07-16", // Virgen del Carmen
			"08-15", // Asunción de la Virgen
			"09-18", // Fiestas Patrias
			"09-19", // Glorias del Ejército
			"10-12", // Encuentro de Dos Mundos
			"11-01", // Día de Todos los Santos
			"12-08", // Inmaculada Concepción
			"12-25", // Navidad
		},
	)
}

// IsHoliday reports whether t's month-day is in the holiday set, ignoring year.
func (s *WorkSchedule) IsHoliday(t time.Time) bool {
	_, ok := s.Holidays[t.Format("01-02")]
	return ok
}

// IsBusinessDay reports whether t is a working day. Sundays and holidays are
// not business days; Saturdays are, under their own shorter shift.
func (s *WorkSchedule) IsBusinessDay(t time.Time) bool {
	if t.Weekday() == time.Sunday {
		return false
	}
	return !s.IsHoliday(t)
}

// ShiftFor returns the shift window that applies to t's weekday.
func (s *WorkSchedule) ShiftFor(t time.Time) ShiftWindow {
	switch t.Weekday() {
	case time.Saturday:
		return s.Saturday
	case time.Friday:
		return s.Friday
	default:
		return s.Weekdays
	}
}

// atClock places an "HH:mm" wall-clock time onto the calendar day of t,
// in t's location. Malformed input yields midnight.
func atClock(t time.Time, hhmm string) time.Time {
	var hour, minute int
	if parts := strings.SplitN(hhmm, ":", 2); len(parts) == 2 {
		hour, _ = strconv.Atoi(parts[0])
		minute, _ = strconv.Atoi(parts[1])
	}
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}
