package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/report"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/schedule"
)

// Engine derives daily and monthly time accounting from raw punches and the
// static work calendar. It is a pure transform: no I/O, no state beyond the
// injected configuration, identical inputs always yield identical reports.
type Engine struct {
	schedule *schedule.WorkSchedule
	pairer   SessionPairer
}

func NewEngine(s *schedule.WorkSchedule) *Engine {
	return &Engine{
		schedule: s,
		pairer:   FixedStridePairer{},
	}
}

var dayNames = []string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// MonthlyReport computes the report for one worker-month. Month is 1-indexed.
// An empty userID yields a nil report: no worker selected is a valid empty
// state, not an error. events may arrive in any order and may contain punches
// for other workers or other months; the engine filters and sorts.
func (e *Engine) MonthlyReport(userID string, year, month int, events []attendance.Event) *report.MonthlyReport {
	if userID == "" {
		return nil
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second) // last day 23:59:59, inclusive

	byDay := make(map[string][]attendance.Event)
	for _, ev := range events {
		if ev.UserID != userID || ev.Timestamp.Before(start) || ev.Timestamp.After(end) {
			continue
		}
		key := ev.Timestamp.Format("2006-01-02")
		byDay[key] = append(byDay[key], ev)
	}

	var summaries []report.DailySummary
	var totalWorkedHours float64
	var totalOvertime time.Duration
	summary := report.MonthlySummary{}

	for day := start; day.Month() == start.Month(); day = day.AddDate(0, 0, 1) {
		ds := e.DailySummary(day, byDay[day.Format("2006-01-02")])
		summaries = append(summaries, ds)

		if ds.IsBusinessDay {
			summary.TotalBusinessDays++
		}
		if !ds.IsAbsent && ds.TotalHours > 0 {
			summary.WorkedDays++
		}
		summary.TotalDelayMinutes += ds.DelayMinutes
		totalWorkedHours += ds.TotalHours
		// Daily overtime is re-parsed from its display form so that the
		// monthly total matches what the daily rows show after truncation.
		totalOvertime += parseHoursMinutes(ds.OvertimeHours)
	}

	// Not clamped: Saturday work can push workedDays past the nominal
	// business-day count, leaving a negative remainder.
	summary.AbsentDays = summary.TotalBusinessDays - summary.WorkedDays
	// Rounded to whole minutes before display so float noise from the daily
	// fractional hours cannot flip a minute.
	workedMinutes := int(math.Round(totalWorkedHours * 60))
	summary.TotalWorkedHours = fmt.Sprintf("%d:%02d", workedMinutes/60, workedMinutes%60)
	summary.TotalOvertimeHours = formatHoursMinutes(totalOvertime, true)
	summary.TotalOvertimeHoursNumber = totalOvertime.Hours()

	return &report.MonthlyReport{
		UserID:         userID,
		PeriodStart:    start.Format("2006-01-02"),
		PeriodEnd:      end.Format("2006-01-02"),
		DailySummaries: summaries,
		Summary:        summary,
	}
}

// DailySummary computes one calendar day. events must all fall on day but may
// be unsorted.
func (e *Engine) DailySummary(day time.Time, events []attendance.Event) report.DailySummary {
	ds := report.DailySummary{
		Date:          day.Format("2006-01-02"),
		DayName:       dayNames[int(day.Weekday())],
		IsBusinessDay: e.schedule.IsBusinessDay(day),
		Entries:       []report.Entry{},
		OvertimeHours: "00:00",
	}

	if len(events) == 0 {
		// A business day with no punches is an absence; a Sunday or holiday
		// with no punches is just a day off.
		ds.IsAbsent = ds.IsBusinessDay
		return ds
	}

	sorted := make([]attendance.Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	for _, ev := range sorted {
		ds.Entries = append(ds.Entries, report.Entry{
			ID:   ev.ID,
			Time: ev.Timestamp.Format("15:04"),
			Type: string(ev.Type),
		})
	}

	isSaturday := day.Weekday() == time.Saturday
	shift := e.schedule.ShiftFor(day)

	// Delay: business days only, Saturdays exempt (their whole attendance is
	// accounted as overtime instead).
	if ds.IsBusinessDay && !isSaturday {
		scheduledStart := shift.StartAt(day)
		if first := sorted[0].Timestamp; first.After(scheduledStart) {
			delay := int(math.Round(first.Sub(scheduledStart).Minutes()))
			if delay > 0 {
				ds.DelayMinutes = delay
			}
		}
	}

	sessions := e.pairer.Pair(sorted)

	var worked time.Duration
	for _, s := range sessions {
		d := s.Duration()
		if !isSaturday {
			d -= e.lunchOverlap(s)
		}
		if d > 0 {
			worked += d
		}
	}
	if worked < 0 {
		worked = 0
	}
	ds.TotalHours = worked.Hours()

	var overtime time.Duration
	if isSaturday {
		// Saturday work is supplementary: the first session counts as
		// overtime wholesale, not measured against the shift.
		if len(sessions) > 0 {
			overtime = sessions[0].Duration()
		}
	} else {
		scheduledEnd := shift.EndAt(day)
		if lastOut, ok := lastOutTime(sorted); ok && lastOut.After(scheduledEnd) {
			overtime = lastOut.Sub(scheduledEnd)
		}
	}
	ds.OvertimeHours = formatHoursMinutes(overtime, true)

	// Any punch at all means the worker showed up, even when malformed
	// pairing computed zero hours.
	ds.IsAbsent = false
	return ds
}

// lunchOverlap returns the portion of a session that falls inside the lunch
// window, anchored to the session's own calendar day.
func (e *Engine) lunchOverlap(s Session) time.Duration {
	lunchStart := e.schedule.LunchBreak.StartAt(s.Start)
	lunchEnd := e.schedule.LunchBreak.EndAt(s.Start)

	start := s.Start
	if lunchStart.After(start) {
		start = lunchStart
	}
	end := s.End
	if lunchEnd.Before(end) {
		end = lunchEnd
	}
	if end.After(start) {
		return end.Sub(start)
	}
	return 0
}

func lastOutTime(sorted []attendance.Event) (time.Time, bool) {
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Type == attendance.EventTypeOut {
			return sorted[i].Timestamp, true
		}
	}
	return time.Time{}, false
}

// formatHoursMinutes renders a non-negative duration as hours and minutes.
// padded selects "HH:mm" (overtime) over "H:mm" (worked-hours totals).
func formatHoursMinutes(d time.Duration, padded bool) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Minute)
	if padded {
		return fmt.Sprintf("%02d:%02d", total/60, total%60)
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// parseHoursMinutes is the inverse of formatHoursMinutes for well-formed
// input; anything else parses as zero.
func parseHoursMinutes(s string) time.Duration {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err1 := strconv.Atoi(parts[0])
	minutes, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
}
