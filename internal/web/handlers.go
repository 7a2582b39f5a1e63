package web

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kitaygorod/tracker/internal/core"
	"github.com/kitaygorod/tracker/internal/logging"
)

// handleTrack resolves a tracking number to a display-ready result.
//
// Status mapping: 200 success, 400 rejected input, 404 unknown tracking
// number, 500 inconsistent sheet data, 502 sheet fetch failure.
func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	trackingNumber := chi.URLParam(r, "trackingNumber")

	result, err := s.resolver.Track(r.Context(), trackingNumber)
	if err != nil {
		s.respondError(w, r, err, trackStatusCode(err))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// trackStatusCode maps a lookup outcome to its HTTP status.
func trackStatusCode(err error) int {
	var verr *core.ValidationError
	var terr *core.TransportError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &terr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleStatuses returns the ordered status scale so the page can render
// progress steps without hardcoding them.
func (s *Server) handleStatuses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"statuses": s.resolver.StatusScale(),
	})
}

// handleRefresh discards both dataset caches and reloads them.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Refresh(r.Context()); err != nil {
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}
	logging.FromContext(r.Context()).Info("datasets refreshed")
	w.WriteHeader(http.StatusNoContent)
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex serves the embedded lookup page.
func (s *Server) handleIndex(staticFS fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			http.Error(w, "page unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}
