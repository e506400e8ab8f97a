package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/openclaw/qrgen/store"
	"github.com/openclaw/qrgen/workflow"
)

// Server holds the dependencies for all HTTP handlers.
type Server struct {
	Controller   *workflow.Controller
	History      *store.History // nil when history is disabled
	HistoryLimit int
	Log          *slog.Logger
	Version      string
	StartTime    time.Time
}

// NewRouter returns a fully configured chi router with all API routes.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.Log))

	// Web UI
	r.Get("/", s.handlePage)
	r.Get("/qr.png", s.handleImage)

	// Workflow
	r.Get("/state", s.handleState)
	r.Post("/url", s.handleEditURL)
	r.Post("/submit", s.handleSubmit)
	r.Post("/reset", s.handleReset)

	// Download
	r.Route("/download", func(r chi.Router) {
		r.Post("/", s.handleRequestDownload)
		r.Post("/filename", s.handleEditFilename)
		r.Post("/confirm", s.handleConfirmDownload)
		r.Post("/cancel", s.handleCancelDownload)
	})

	r.Post("/theme/toggle", s.handleToggleTheme)

	// Status & history
	r.Get("/status", s.handleStatus)
	r.Get("/history", s.handleHistory)

	return r
}

// --- helpers ----------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// --- middleware --------------------------------------------------------------

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
			next.ServeHTTP(w, r)
		})
	}
}
