package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetMyEvents(w http.ResponseWriter, r *http.Request)
	CreateEvent(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
	DeleteEvent(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), attendance.ClockRequest{UserID: userID})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), attendance.ClockRequest{UserID: userID})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock out successful", result)
}

// GetMyEvents implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	filter := attendance.ListEventsFilter{
		UserID:    userID,
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.attendanceService.ListEvents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEvent implements AttendanceHandler. Supervisors repair broken punch
// sequences with this.
func (h *attendanceHandlerImpl) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CreateEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance event created", result)
}

// ListEvents implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListEventsFilter{
		UserID:    r.URL.Query().Get("user_id"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.attendanceService.ListEvents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteEvent implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		response.BadRequest(w, "Event ID is required", nil)
		return
	}

	if err := h.attendanceService.DeleteEvent(r.Context(), eventID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance event deleted", nil)
}
