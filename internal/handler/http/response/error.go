package response

import (
	"errors"
	"net/http"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/auth"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/inventory"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/report"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/user"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrRUTExists):
		Conflict(w, "RUT already registered")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrSupervisorAccessRequired),
		errors.Is(err, user.ErrWarehouseAccessRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open clock-in to close")
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")
	case errors.Is(err, attendance.ErrInvalidEventType):
		BadRequest(w, "Invalid event type", nil)

	// Report domain errors
	case errors.Is(err, report.ErrReportGenerationFailed):
		BadRequest(w, "Report could not be generated", nil)

	// Inventory domain errors
	case errors.Is(err, inventory.ErrMaterialNotFound):
		NotFound(w, "Material not found")
	case errors.Is(err, inventory.ErrMaterialNameExists):
		Conflict(w, "Material name already exists")
	case errors.Is(err, inventory.ErrInsufficientStock):
		BadRequest(w, "Insufficient stock for movement", nil)
	case errors.Is(err, inventory.ErrInvalidMovementType):
		BadRequest(w, "Invalid movement type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
