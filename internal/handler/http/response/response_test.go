package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/auth"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/inventory"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/user"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeBody(t, rec)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.Equal(t, map[string]any{"id": "abc"}, body.Data)
}

func TestCreatedEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	Created(rec, "Material created", map[string]string{"name": "Cemento"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Material created", body.Message)
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	ValidationError(rec, map[string]string{"month": "month must be between 1 and 12"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "month must be between 1 and 12", body.Error.Details["month"])
}

func TestHandleErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation errors", validator.ValidationErrors{{Field: "month", Message: "required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"already clocked in", attendance.ErrAlreadyClockedIn, http.StatusConflict, "CONFLICT"},
		{"event not found", attendance.ErrEventNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"supervisor access", user.ErrSupervisorAccessRequired, http.StatusForbidden, "FORBIDDEN"},
		{"insufficient stock", inventory.ErrInsufficientStock, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.wantCode, body.Error.Code)
		})
	}
}
