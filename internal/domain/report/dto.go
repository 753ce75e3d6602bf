package report

import (
	"fmt"
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type MonthlyReportRequest struct {
	UserID string `json:"user_id"`
	Month  int    `json:"month"` // 1-indexed
	Year   int    `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Entry is a single punch reduced to its display form.
type Entry struct {
	ID   string `json:"id"`
	Time string `json:"time"` // "15:04"
	Type string `json:"type"`
}

// DailySummary is one calendar day of derived time accounting. Immutable
// once computed.
type DailySummary struct {
	Date          string  `json:"date"`     // "2006-01-02"
	DayName       string  `json:"day_name"` // localized weekday name
	IsBusinessDay bool    `json:"is_business_day"`
	Entries       []Entry `json:"entries"`
	TotalHours    float64 `json:"total_hours"`
	DelayMinutes  int     `json:"delay_minutes"`
	OvertimeHours string  `json:"overtime_hours"` // "HH:mm"
	IsAbsent      bool    `json:"is_absent"`
}

// MonthlySummary aggregates the month. Overtime is carried both as a
// formatted string and as raw hours because payroll consumes the number
// while the portal displays the string; neither representation may be
// dropped.
type MonthlySummary struct {
	TotalBusinessDays        int     `json:"total_business_days"`
	WorkedDays               int     `json:"worked_days"`
	AbsentDays               int     `json:"absent_days"`
	TotalWorkedHours         string  `json:"total_worked_hours"`   // "H:mm"
	TotalOvertimeHours       string  `json:"total_overtime_hours"` // "HH:mm"
	TotalOvertimeHoursNumber float64 `json:"total_overtime_hours_number"`
	TotalDelayMinutes        int     `json:"total_delay_minutes"`
}

type MonthlyReport struct {
	UserID         string         `json:"user_id"`
	PeriodStart    string         `json:"period_start"` // "2006-01-02"
	PeriodEnd      string         `json:"period_end"`
	DailySummaries []DailySummary `json:"daily_summaries"`
	Summary        MonthlySummary `json:"summary"`
}
