package rest

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/coinledger/internal/application"
	"github.com/goccy/go-json"
)

const ContentTypeJSON = "application/json; charset=utf-8"

type InvalidResponse struct {
	Invalid bool `json:"invalid"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error bool `json:"error"`
}

// WriteJSON encodes v as the response body.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteRaw relays an already encoded JSON body, such as an upstream exchange reply.
func WriteRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func WriteInvalid(w http.ResponseWriter) {
	WriteJSON(w, http.StatusBadRequest, InvalidResponse{Invalid: true})
}

func WriteSuccess(w http.ResponseWriter, ok bool) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: ok})
}

func WriteInternalError(w http.ResponseWriter) {
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: true})
}

// WriteError maps application errors to the fixed response markers.
// Details never reach the client; internal failures are logged instead.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	svcErr, ok := application.IsServiceError(err)
	if !ok {
		svcErr = application.NewInternalError(err)
	}

	switch svcErr.Code {
	case application.ErrCodeInvalidInput:
		WriteJSON(w, svcErr.HTTPStatus, InvalidResponse{Invalid: true})
	case application.ErrCodeNotFound:
		WriteJSON(w, svcErr.HTTPStatus, SuccessResponse{Success: false})
	default:
		logger.Error("request failed", "code", svcErr.Code, "error", err)
		WriteJSON(w, svcErr.HTTPStatus, ErrorResponse{Error: true})
	}
}
