package report

import "context"

// ReportService derives monthly attendance reports from raw punches.
type ReportService interface {
	// MonthlyAttendance computes the report for one worker-month. A request
	// with an empty UserID yields a nil report and no error: "no worker
	// selected" is a valid empty state, not a failure.
	MonthlyAttendance(ctx context.Context, req MonthlyReportRequest) (*MonthlyReport, error)

	// ExportMonthlyAttendance renders the same report as an XLSX workbook
	// for payroll. Returns the file contents and a suggested filename.
	ExportMonthlyAttendance(ctx context.Context, req MonthlyReportRequest) ([]byte, string, error)
}
