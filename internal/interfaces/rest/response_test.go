package rest_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/coinledger/internal/application"
	"github.com/DanielPopoola/coinledger/internal/interfaces/rest"
	"github.com/stretchr/testify/assert"
)

func TestWriteError_Markers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid input",
			err:        application.NewInvalidInputError(errors.New("bad")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"invalid":true}`,
		},
		{
			name:       "not found",
			err:        application.NewNotFoundError(errors.New("gone")),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false}`,
		},
		{
			name:       "internal",
			err:        application.NewInternalError(errors.New("db down")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":true}`,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rest.WriteError(rec, tt.err, logger)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, rest.ContentTypeJSON, rec.Header().Get("Content-Type"))
			assert.NotContains(t, rec.Body.String(), "db down")
		})
	}
}

func TestWriteRaw_PassesBodyThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	rest.WriteRaw(rec, http.StatusTooManyRequests, []byte(`{"code":"THROTTLED"}`))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, `{"code":"THROTTLED"}`, rec.Body.String())
	assert.Equal(t, rest.ContentTypeJSON, rec.Header().Get("Content-Type"))
}

func TestWriteError_UsesServiceErrorStatus(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := &application.ServiceError{
		Code:       application.ErrCodeInternal,
		Message:    "exchange unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
	}

	rec := httptest.NewRecorder()
	rest.WriteError(rec, err, logger)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":true}`, rec.Body.String())
}
