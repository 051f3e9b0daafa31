// Package server exposes the sync subsystem over HTTP: a protected trigger
// endpoint, a status endpoint, and the startup check used by the website on
// page load.
package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/service"
)

// StartupChecker runs the on-load resync decision.
type StartupChecker interface {
	Check(ctx context.Context) service.StartupDecision
}

type Server struct {
	syncer  service.Syncer
	status  service.StatusStore
	startup StartupChecker
	secret  string
	devMode bool
	logger  *slog.Logger
}

func New(
	syncer service.Syncer,
	status service.StatusStore,
	startup StartupChecker,
	secret string,
	devMode bool,
	logger *slog.Logger,
) *Server {
	return &Server{
		syncer:  syncer,
		status:  status,
		startup: startup,
		secret:  secret,
		devMode: devMode,
		logger:  logger.With("component", "server"),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api/sync", func(r chi.Router) {
		r.Post("/", s.handleSync)
		r.Get("/status", s.handleStatus)
		r.Get("/startup", s.handleStartup)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	LastSync *domain.RunSummary `json:"lastSync"`
	Message  string             `json:"message"`
}

type startupResponse struct {
	Message       string     `json:"message"`
	DBAvailable   bool       `json:"dbAvailable"`
	SyncTriggered bool       `json:"syncTriggered"`
	Skipped       bool       `json:"skipped"`
	LastSyncTime  *time.Time `json:"lastSyncTime,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
}

// handleSync runs a full sync inline and reports per-domain results. Partial
// failures map to 207 so callers can distinguish them from a clean run.
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	summary, err := s.syncer.Sync(r.Context())
	if err != nil {
		s.logger.Error("sync request failed", "error", err)
		if summary == nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		// The summary carries the whole-run error in Errors; clients get the
		// same shape for every outcome.
		writeJSON(w, http.StatusInternalServerError, summary)
		return
	}

	status := http.StatusOK
	if len(summary.Errors) > 0 {
		status = http.StatusMultiStatus
	}
	writeJSON(w, status, summary)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	last, err := s.status.Read()
	if err != nil {
		s.logger.Error("failed to read sync status", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to read sync status"})
		return
	}

	resp := statusResponse{LastSync: last, Message: "ok"}
	if last == nil {
		resp.Message = "no sync has run yet"
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleStartup answers immediately; a triggered sync keeps running after the
// response is written.
func (s *Server) handleStartup(w http.ResponseWriter, r *http.Request) {
	decision := s.startup.Check(r.Context())

	writeJSON(w, http.StatusOK, startupResponse{
		Message:       decision.Message,
		DBAvailable:   decision.DBAvailable,
		SyncTriggered: decision.SyncTriggered,
		Skipped:       decision.Skipped,
		LastSyncTime:  decision.LastSyncTime,
		Timestamp:     time.Now().UTC(),
	})
}

// authorized checks the Bearer secret. Development mode accepts any request
// so local tooling does not need the secret configured.
func (s *Server) authorized(r *http.Request) bool {
	if s.devMode {
		return true
	}

	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.secret)) == 1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
