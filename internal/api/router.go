package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/registry"
)

// NewRouter assembles the full HTTP surface: middleware stack, the static
// front-end, and the API endpoints.
func NewRouter(cfg *config.Settings, reg *registry.Registry) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	// Root redirects to the static front-end
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})

	// Static front-end files
	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
	r.Handle("/static/*", fs)

	// Health check (no auth, used by deployment probes)
	r.Get("/health", NewHealthHandler(cfg, reg).ServeHTTP)

	// Activities API
	r.Mount("/activities", NewActivitiesHandler(reg).Routes())

	// System monitoring
	r.Route("/api/system", func(r chi.Router) {
		r.Get("/stats", NewSystemHandler().GetStats)
	})

	return r
}

// requestLogger is middleware that logs HTTP requests using zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("request")
	})
}

// corsMiddleware adds CORS headers for cross-origin requests.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
