package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"train-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    map[string]any    `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &usecase.ValidationError{Message: "Validation failed", Fields: map[string]string{"pnr": "This field is required"}}, http.StatusBadRequest, "Validation failed"},
		{"session expired", usecase.ErrSessionExpired, http.StatusConflict, usecase.ErrSessionExpired.Error()},
		{"not found", &usecase.NotFoundError{Resource: "PNR"}, http.StatusNotFound, "PNR not found"},
		{"booking failed", fmt.Errorf("%w: %w", usecase.ErrBookingFailed, errors.New("tx aborted")), http.StatusInternalServerError, "Booking failed. Please try again."},
		{"already cancelled", usecase.ErrAlreadyCancelled, http.StatusConflict, "booking already cancelled"},
		{"conflict", fmt.Errorf("email already registered: %w", usecase.ErrConflict), http.StatusConflict, "email already registered: already exists"},
		{"bad credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"inactive", usecase.ErrInactiveAccount, http.StatusForbidden, "account is deactivated"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test")

			assert.Equal(t, tt.status, rec.Code)

			var body envelope
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Status)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestHandleServiceError_SessionExpiredRedirectsHome(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, zap.NewNop(), fmt.Errorf("load: %w", usecase.ErrSessionExpired), "submit passengers")

	var body envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "/", body.Data["redirect"])
	assert.Equal(t, "search_entry", body.Data["state"])
}

func TestHandleServiceError_ValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, zap.NewNop(), &usecase.ValidationError{
		Message: "Please fill all passenger details correctly.",
		Fields:  map[string]string{"passenger_1.age": "Maximum value is 120"},
	}, "submit passengers")

	var body envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Maximum value is 120", body.Errors["passenger_1.age"])
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 3, parseInt("3", 1))
	assert.Equal(t, 1, parseInt("", 1))
	assert.Equal(t, 1, parseInt("-2", 1))
	assert.Equal(t, 1, parseInt("abc", 1))
}
