package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"budgetd/internal/core"
	"budgetd/internal/middleware/trace"
)

// dataEnvelope wraps every successful JSON body.
type dataEnvelope struct {
	Data any `json:"data"`
}

type jsonError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dataEnvelope{Data: data}); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps a service error onto a status code. Storage failures
// stay opaque: the detail goes to the log, never to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classifyError(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed",
			"request_id", trace.GetRequestID(r.Context()),
			"error", err)
		w.WriteHeader(status)
		return
	}
	writeErrorJSON(w, status, code, err.Error())
}

func writeErrorJSON(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(jsonError{Code: code, Message: message}); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrUnknownAccountType):
		return http.StatusBadRequest, "AccountValidationError"
	case errors.Is(err, core.ErrInvalidCategoryName):
		return http.StatusBadRequest, "CategoryValidationError"
	case errors.Is(err, core.ErrInvalidRecordType), errors.Is(err, core.ErrAmountNotPositive):
		return http.StatusBadRequest, "RecordValidationError"
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound, "EntityNotFoundError"
	default:
		return http.StatusInternalServerError, ""
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "InvalidRequestBody", "request body is not valid JSON")
		return false
	}
	return true
}

func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "InvalidPathParameter", "id must be an integer")
		return 0, false
	}
	return id, true
}

// queryInt64 reads an optional integer query parameter. A present but
// malformed value is an error, not an ignored filter.
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
