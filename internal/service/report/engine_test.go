package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSchedule mirrors the crew calendar used in payroll discussions:
// weekday shift 08:00–17:30, shorter Friday, half Saturday, lunch 13:00–14:00,
// Fiestas Patrias as the recurring holiday.
func testSchedule() *schedule.WorkSchedule {
	return schedule.New(
		schedule.ShiftWindow{Start: "08:00", End: "17:30"},
		schedule.ShiftWindow{Start: "08:00", End: "16:30"},
		schedule.ShiftWindow{Start: "09:00", End: "14:00"},
		schedule.ShiftWindow{Start: "13:00", End: "14:00"},
		[]string{"09-18"},
	)
}

func testEngine() *Engine {
	return NewEngine(testSchedule())
}

func day(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	require.NoError(t, err)
	return d
}

func event(t *testing.T, userID, stamp string, typ attendance.EventType) attendance.Event {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", stamp, time.Local)
	require.NoError(t, err)
	return attendance.Event{
		ID:        fmt.Sprintf("%s/%s/%s", userID, stamp, typ),
		UserID:    userID,
		Timestamp: ts,
		Type:      typ,
	}
}

// ---------------------------------------------------------------------------
// Daily summaries
// ---------------------------------------------------------------------------

func TestDailySummary_NoEventsOnBusinessDay(t *testing.T) {
	e := testEngine()
	monday := day(t, "2026-03-02")

	ds := e.DailySummary(monday, nil)

	assert.True(t, ds.IsBusinessDay)
	assert.True(t, ds.IsAbsent)
	assert.Empty(t, ds.Entries)
	assert.Zero(t, ds.TotalHours)
	assert.Zero(t, ds.DelayMinutes)
	assert.Equal(t, "00:00", ds.OvertimeHours)
}

func TestDailySummary_NoEventsOnSunday(t *testing.T) {
	e := testEngine()
	sunday := day(t, "2026-03-01")

	ds := e.DailySummary(sunday, nil)

	assert.False(t, ds.IsBusinessDay)
	assert.False(t, ds.IsAbsent, "a day off is not an absence")
}

func TestDailySummary_NoEventsOnHoliday(t *testing.T) {
	e := testEngine()
	holiday := day(t, "2026-09-18")

	ds := e.DailySummary(holiday, nil)

	assert.False(t, ds.IsBusinessDay)
	assert.False(t, ds.IsAbsent)
}

func TestDailySummary_FullWeekdayWithOvertime(t *testing.T) {
	e := testEngine()
	monday := day(t, "2026-03-02")
	events := []attendance.Event{
		event(t, "w1", "2026-03-02 08:05", attendance.EventTypeIn),
		event(t, "w1", "2026-03-02 17:45", attendance.EventTypeOut),
	}

	ds := e.DailySummary(monday, events)

	// 9h40m on site minus the hour of lunch worked through.
	assert.InDelta(t, 8.0+40.0/60.0, ds.TotalHours, 1e-9)
	assert.Equal(t, 5, ds.DelayMinutes)
	assert.Equal(t, "00:15", ds.OvertimeHours)
	assert.False(t, ds.IsAbsent)
	assert.Len(t, ds.Entries, 2)
	assert.Equal(t, "08:05", ds.Entries[0].Time)
	assert.Equal(t, "in", ds.Entries[0].Type)
}

func TestDailySummary_EarlyArrivalMorningOnly(t *testing.T) {
	e := testEngine()
	monday := day(t, "2026-03-02")
	events := []attendance.Event{
		event(t, "w1", "2026-03-02 07:50", attendance.EventTypeIn),
		event(t, "w1", "2026-03-02 12:30", attendance.EventTypeOut),
	}

	ds := e.DailySummary(monday, events)

	// Entirely before lunch: 4h40m, no overlap, no delay, no overtime.
	assert.InDelta(t, 4.0+40.0/60.0, ds.TotalHours, 1e-9)
	assert.Zero(t, ds.DelayMinutes, "early arrival floors delay at 0")
	assert.Equal(t, "00:00", ds.OvertimeHours)
}

func TestDailySummary_SessionInsideLunchCountsNothing(t *testing.T) {
	e := testEngine()
	monday := day(t, "2026-03-02")
	events := []attendance.Event{
		event(t, "w1", "2026-03-02 13:10", attendance.EventTypeIn),
		event(t, "w1", "2026-03-02 13:50", attendance.EventTypeOut),
	}

	ds := e.DailySummary(monday, events)

	assert.Zero(t, ds.TotalHours)
	assert.False(t, ds.IsAbsent)
}

func TestDailySummary_SessionOutsideLunchUnreduced(t *testing.T) {
	e := testEngine()
	monday := day(t, "2026-03-02")
	events := []attendance.Event{
		event(t, "w1", "2026-03-02 14:00", attendance.EventTypeIn),
		event(t, "w1", "2026-03-02 17:00", attendance.EventTypeOut),
	}

	ds := e.DailySummary(monday, events)

	assert.InDelta(t, 3.0, ds.TotalHours, 1e-9)
}

func TestDailySummary_FridayUsesFridayShift(t *testing.T) {
	e := testEngine()
	friday := day(t, "2026-03-06")
	events := []attendance.Event{
		event(t, "w1", "2026-03-06 08:10", attendance.EventTypeIn),
		event(t, "w1", "2026-03-06 17:00", attendance.EventTypeOut),
	}

	ds := e.DailySummary(friday, events)

	assert.Equal(t, 10, ds.DelayMinutes)
	// Friday ends 16:30, so 17:00 is half an hour over.
	assert.Equal(t, "00:30", ds.OvertimeHours)
}

func TestDailySummary_SaturdayWorkIsAllOvertime(t *testing.T) {
	e := testEngine()
	saturday := day(t, "2026-03-07")
	events := []attendance.Event{
		event(t, "w1", "2026-03-07 09:00", attendance.EventTypeIn),
		event(t, "w1", "2026-03-07 13:00", attendance.EventTypeOut),
	}

	ds := e.DailySummary(saturday, events)

	assert.InDelta(t, 4.0, ds.TotalHours, 1e-9)
	assert.Equal(t, "04:00", ds.OvertimeHours)
	assert.Zero(t, ds.DelayMinutes, "Saturdays are exempt from delay accounting")
	assert.Equal(t, parseHoursMinutes(ds.OvertimeHours).Hours(), ds.TotalHours,
		"on Saturday total and overtime must be the same duration")
}

func TestDailySummary_UnsortedEventsAreSorted(t *testing.T) {
	e := testEngine()
	monday := day(t, "2026-03-02")
	events := []attendance.Event{
		event(t, "w1", "2026-03-02 17:00", attendance.EventTypeOut),
		event(t, "w1", "2026-03-02 08:00", attendance.EventTypeIn),
	}

	ds := e.DailySummary(monday, events)

	assert.Equal(t, "08:00", ds.Entries[0].Time)
	assert.Equal(t, "17:00", ds.Entries[1].Time)
	// 9h minus 1h lunch.
	assert.InDelta(t, 8.0, ds.TotalHours, 1e-9)
}

func TestDailySummary_MalformedSequenceUnderCounts(t *testing.T) {
	e := testEngine()
	monday := day(t, "2026-03-02")
	events := []attendance.Event{
		event(t, "w1", "2026-03-02 08:00", attendance.EventTypeIn),
		event(t, "w1", "2026-03-02 09:00", attendance.EventTypeIn),
		event(t, "w1", "2026-03-02 17:00", attendance.EventTypeOut),
	}

	ds := e.DailySummary(monday, events)

	// The worker clearly worked until 17:00, but the fixed-stride walk drops
	// the mismatched first pair and runs out of events. This degraded output
	// is the accepted behavior; payroll reviews such days by hand.
	assert.Zero(t, ds.TotalHours)
	assert.False(t, ds.IsAbsent, "punches exist, so the day is not an absence")
	assert.Equal(t, "00:00", ds.OvertimeHours)
	assert.Zero(t, ds.DelayMinutes)
	assert.Len(t, ds.Entries, 3)
}

// ---------------------------------------------------------------------------
// Monthly aggregation
// ---------------------------------------------------------------------------

func TestMonthlyReport_NoUserSelected(t *testing.T) {
	e := testEngine()
	assert.Nil(t, e.MonthlyReport("", 2026, 3, nil))
}

func TestMonthlyReport_CoversEveryCalendarDay(t *testing.T) {
	e := testEngine()

	rep := e.MonthlyReport("w1", 2026, 2, nil)

	require.NotNil(t, rep)
	assert.Equal(t, "2026-02-01", rep.PeriodStart)
	assert.Equal(t, "2026-02-28", rep.PeriodEnd)
	assert.Len(t, rep.DailySummaries, 28)
}

func TestMonthlyReport_FiltersForeignAndOutOfRangeEvents(t *testing.T) {
	e := testEngine()
	events := []attendance.Event{
		event(t, "w1", "2026-03-02 08:00", attendance.EventTypeIn),
		event(t, "w1", "2026-03-02 17:30", attendance.EventTypeOut),
		event(t, "w2", "2026-03-02 08:00", attendance.EventTypeIn), // other worker
		event(t, "w1", "2026-02-27 08:00", attendance.EventTypeIn), // other month
		event(t, "w1", "2026-04-01 08:00", attendance.EventTypeIn), // other month
	}

	rep := e.MonthlyReport("w1", 2026, 3, events)

	require.NotNil(t, rep)
	assert.Equal(t, 1, rep.Summary.WorkedDays)
	var withEntries int
	for _, ds := range rep.DailySummaries {
		withEntries += len(ds.Entries)
	}
	assert.Equal(t, 2, withEntries)
}

func TestMonthlyReport_AbsentBusinessDayCounted(t *testing.T) {
	e := testEngine()
	// Work Monday the 2nd only; every other business day of March 2026 is an
	// absence.
	events := []attendance.Event{
		event(t, "w1", "2026-03-02 08:00", attendance.EventTypeIn),
		event(t, "w1", "2026-03-02 17:30", attendance.EventTypeOut),
	}

	rep := e.MonthlyReport("w1", 2026, 3, events)
	require.NotNil(t, rep)

	// March 2026 has 31 days, 5 Sundays, no holidays in the test calendar.
	assert.Equal(t, 26, rep.Summary.TotalBusinessDays)
	assert.Equal(t, 1, rep.Summary.WorkedDays)
	assert.Equal(t, 25, rep.Summary.AbsentDays)

	tuesday := rep.DailySummaries[2] // 2026-03-03
	assert.Equal(t, "2026-03-03", tuesday.Date)
	assert.True(t, tuesday.IsAbsent)
}

func TestMonthlyReport_SundayWorkSkewsAbsentArithmetic(t *testing.T) {
	e := testEngine()
	// A worker punching only on a Sunday still counts as a worked day, and
	// absentDays = businessDays - workedDays is taken literally, without
	// clamping. Changing this needs product sign-off.
	events := []attendance.Event{
		event(t, "w1", "2026-03-01 09:00", attendance.EventTypeIn),
		event(t, "w1", "2026-03-01 12:00", attendance.EventTypeOut),
	}

	rep := e.MonthlyReport("w1", 2026, 3, events)
	require.NotNil(t, rep)

	assert.Equal(t, 26, rep.Summary.TotalBusinessDays)
	assert.Equal(t, 1, rep.Summary.WorkedDays)
	assert.Equal(t, 25, rep.Summary.AbsentDays,
		"the Sunday shift silently offsets one genuine weekday absence")
}

func TestMonthlyReport_TotalsAreConsistentWithDailyRows(t *testing.T) {
	e := testEngine()
	events := []attendance.Event{
		// Monday: 5 min late, 15 min over.
		event(t, "w1", "2026-03-02 08:05", attendance.EventTypeIn),
		event(t, "w1", "2026-03-02 17:45", attendance.EventTypeOut),
		// Tuesday: 10 min late, no overtime.
		event(t, "w1", "2026-03-03 08:10", attendance.EventTypeIn),
		event(t, "w1", "2026-03-03 17:00", attendance.EventTypeOut),
		// Saturday: four hours, all overtime.
		event(t, "w1", "2026-03-07 09:00", attendance.EventTypeIn),
		event(t, "w1", "2026-03-07 13:00", attendance.EventTypeOut),
	}

	rep := e.MonthlyReport("w1", 2026, 3, events)
	require.NotNil(t, rep)

	var delaySum int
	var overtimeSum time.Duration
	for _, ds := range rep.DailySummaries {
		delaySum += ds.DelayMinutes
		overtimeSum += parseHoursMinutes(ds.OvertimeHours)
	}

	assert.Equal(t, delaySum, rep.Summary.TotalDelayMinutes)
	assert.Equal(t, 15, rep.Summary.TotalDelayMinutes)
	assert.Equal(t, "04:15", rep.Summary.TotalOvertimeHours)
	assert.InDelta(t, overtimeSum.Hours(), rep.Summary.TotalOvertimeHoursNumber, 1e-9)
	assert.InDelta(t, float64(overtimeSum.Milliseconds()),
		rep.Summary.TotalOvertimeHoursNumber*3600000, 1.0)

	// Monday 8h40m + Tuesday 8h (9h-1h lunch ... 08:10 to 17:00 is 8h50m minus
	// 1h lunch = 7h50m) + Saturday 4h.
	assert.Equal(t, "20:30", rep.Summary.TotalWorkedHours)
	assert.Equal(t, 3, rep.Summary.WorkedDays)
}

func TestMonthlyReport_FormatHelpers(t *testing.T) {
	assert.Equal(t, "00:00", formatHoursMinutes(0, true))
	assert.Equal(t, "0:00", formatHoursMinutes(0, false))
	assert.Equal(t, "01:05", formatHoursMinutes(time.Hour+5*time.Minute, true))
	assert.Equal(t, "26:30", formatHoursMinutes(26*time.Hour+30*time.Minute, true))
	assert.Equal(t, "00:00", formatHoursMinutes(-time.Hour, true))

	assert.Equal(t, time.Hour+5*time.Minute, parseHoursMinutes("01:05"))
	assert.Equal(t, 26*time.Hour+30*time.Minute, parseHoursMinutes("26:30"))
	assert.Equal(t, time.Duration(0), parseHoursMinutes("garbage"))
}
