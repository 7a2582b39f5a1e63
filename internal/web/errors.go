package web

// errors.go renders lookup failures as JSON.
//
// The flow: a handler gets an error from core, picks an HTTP status, and
// calls respondError. The technical error is logged with the request id;
// the client only ever sees the core.MapError UserMessage — message,
// suggested action, and a stable code to quote to support.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/kitaygorod/tracker/internal/core"
)

// respondError logs err and writes its user-facing mapping.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	msg := core.MapError(err)

	logFn := slog.Error
	if statusCode < http.StatusInternalServerError {
		// Client-side outcomes (bad input, unknown number) are normal traffic.
		logFn = slog.Info
	}
	logFn("request failed",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", msg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	respondJSON(w, statusCode, msg)
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}
