package report

import (
	"context"
	"fmt"
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/report"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/schedule"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/user"
)

type ReportServiceImpl struct {
	eventRepo attendance.EventRepository
	userRepo  user.UserRepository
	engine    *Engine
}

func NewReportService(eventRepo attendance.EventRepository, userRepo user.UserRepository, workSchedule *schedule.WorkSchedule) report.ReportService {
	return &ReportServiceImpl{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		engine:    NewEngine(workSchedule),
	}
}

// MonthlyAttendance implements report.ReportService.
func (s *ReportServiceImpl) MonthlyAttendance(ctx context.Context, req report.MonthlyReportRequest) (*report.MonthlyReport, error) {
	if req.UserID == "" {
		return nil, nil
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	events, err := s.eventRepo.ListByUserAndRange(ctx, req.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}

	return s.engine.MonthlyReport(req.UserID, req.Year, req.Month, events), nil
}

// ExportMonthlyAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportMonthlyAttendance(ctx context.Context, req report.MonthlyReportRequest) ([]byte, string, error) {
	rep, err := s.MonthlyAttendance(ctx, req)
	if err != nil {
		return nil, "", err
	}
	if rep == nil {
		return nil, "", report.ErrReportGenerationFailed
	}

	worker, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get worker: %w", err)
	}

	contents, err := renderMonthlyAttendanceXLSX(rep, worker)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("asistencia_%s_%04d-%02d.xlsx", worker.Name, req.Year, req.Month)
	return contents, filename, nil
}
