package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/report"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/handler/http/response"
)

type ReportHandler interface {
	GetMyMonthlyReport(w http.ResponseWriter, r *http.Request)
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
	ExportMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func monthlyReportRequest(r *http.Request, userID string) report.MonthlyReportRequest {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	return report.MonthlyReportRequest{
		UserID: userID,
		Month:  month,
		Year:   year,
	}
}

// GetMyMonthlyReport implements ReportHandler.
func (h *reportHandlerImpl) GetMyMonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	result, err := h.reportService.MonthlyAttendance(r.Context(), monthlyReportRequest(r, userID))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlyReport implements ReportHandler.
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.MonthlyAttendance(r.Context(), monthlyReportRequest(r, r.URL.Query().Get("user_id")))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthlyReport implements ReportHandler.
func (h *reportHandlerImpl) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	req := monthlyReportRequest(r, r.URL.Query().Get("user_id"))

	content, filename, err := h.reportService.ExportMonthlyAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
