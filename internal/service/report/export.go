package report

import (
	"fmt"
	"strings"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/report"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/user"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Asistencia"

// renderMonthlyAttendanceXLSX lays out one worker-month as a payroll
// workbook: a header block, one row per calendar day, and the monthly totals.
// The numeric overtime column feeds payroll formulas downstream, so it is
// written as a number, not a string.
func renderMonthlyAttendanceXLSX(rep *report.MonthlyReport, worker user.User) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(exportSheet, "A1", "Trabajador")
	f.SetCellValue(exportSheet, "B1", worker.Name)
	f.SetCellValue(exportSheet, "A2", "RUT")
	f.SetCellValue(exportSheet, "B2", worker.RUT)
	f.SetCellValue(exportSheet, "A3", "Período")
	f.SetCellValue(exportSheet, "B3", fmt.Sprintf("%s a %s", rep.PeriodStart, rep.PeriodEnd))

	headers := []string{"Fecha", "Día", "Marcas", "Horas", "Atraso (min)", "Horas extra", "Estado"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 5)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(exportSheet, cell, h)
	}

	row := 6
	for _, ds := range rep.DailySummaries {
		f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), ds.Date)
		f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), ds.DayName)
		f.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), formatEntries(ds.Entries))
		f.SetCellValue(exportSheet, fmt.Sprintf("D%d", row), ds.TotalHours)
		f.SetCellValue(exportSheet, fmt.Sprintf("E%d", row), ds.DelayMinutes)
		f.SetCellValue(exportSheet, fmt.Sprintf("F%d", row), ds.OvertimeHours)
		f.SetCellValue(exportSheet, fmt.Sprintf("G%d", row), dayStatus(ds))
		row++
	}

	row++
	sum := rep.Summary
	totals := []struct {
		label string
		value interface{}
	}{
		{"Días hábiles", sum.TotalBusinessDays},
		{"Días trabajados", sum.WorkedDays},
		{"Ausencias", sum.AbsentDays},
		{"Horas trabajadas", sum.TotalWorkedHours},
		{"Horas extra", sum.TotalOvertimeHours},
		{"Horas extra (número)", sum.TotalOvertimeHoursNumber},
		{"Atraso total (min)", sum.TotalDelayMinutes},
	}
	for _, t := range totals {
		f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), t.label)
		f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), t.value)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatEntries(entries []report.Entry) string {
	if len(entries) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s %s", e.Type, e.Time))
	}
	return strings.Join(parts, ", ")
}

func dayStatus(ds report.DailySummary) string {
	switch {
	case ds.IsAbsent:
		return "Ausente"
	case len(ds.Entries) == 0:
		return "Libre"
	default:
		return "Presente"
	}
}
