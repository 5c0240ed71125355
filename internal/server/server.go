package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/vaultlog/internal/store"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	st     *store.Store
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(st *store.Store, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		st:     st,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read endpoints.
	s.router.Get("/api/v1/settings", s.handleGetSettings)
	s.router.Get("/api/v1/sessions", s.handleListSessions)
	s.router.Get("/api/v1/sessions/{id}", s.handleGetSession)
	s.router.Get("/api/v1/sessions/{id}/summary", s.handleSessionSummary)
	s.router.Get("/api/v1/sessions/{id}/videos", s.handleListVideos)
	s.router.Get("/api/v1/stats", s.handleStats)
	s.router.Get("/api/v1/plan", s.handleGetPlan)
	s.router.Get("/api/v1/backup", s.handleDownloadBackup)

	// Mutating endpoints (API key required when configured).
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Put("/api/v1/settings/units", s.handleSetUnits)
		r.Put("/api/v1/settings/athlete", s.handleSetAthleteField)
		r.Put("/api/v1/settings/watermark", s.handleSetWatermark)
		r.Post("/api/v1/sessions", s.handleAddSession)
		r.Patch("/api/v1/sessions/{id}", s.handleUpdateSession)
		r.Delete("/api/v1/sessions/{id}", s.handleDeleteSession)
		r.Post("/api/v1/sessions/{id}/attempts", s.handleRecordAttempt)
		r.Post("/api/v1/sessions/{id}/routine", s.handleSetRoutineDone)
		r.Post("/api/v1/sessions/{id}/videos", s.handleAddVideo)
		r.Put("/api/v1/plan", s.handleUploadPlan)
		r.Delete("/api/v1/plan", s.handleResetPlan)
		r.Post("/api/v1/backup", s.handleRestoreBackup)
	})
}
