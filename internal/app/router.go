// Package app wires the HTTP router and readiness checks for the server
// binary.
package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hireline/hireline/internal/adapter/httpserver"
	"github.com/hireline/hireline/internal/adapter/observability"
	"github.com/hireline/hireline/internal/config"
)

// ParseOrigins splits a comma-separated origin list into a slice, trimming
// spaces. Empty input means allow all.
func ParseOrigins(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return []string{"*"}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// BuildRouter constructs the HTTP handler with all middlewares and routes.
func BuildRouter(cfg config.Config, srv *httpserver.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(httpserver.Recoverer())
	r.Use(httpserver.RequestID())
	r.Use(httpserver.TimeoutMiddleware(cfg.HTTPWriteTimeout))
	r.Use(httpserver.TraceMiddleware())
	r.Use(httpserver.AccessLog())
	r.Use(observability.HTTPMetricsMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ParseOrigins(cfg.CORSAllowOrigins),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Rate limit mutating endpoints.
	r.Group(func(wr chi.Router) {
		wr.Use(httprate.LimitByIP(cfg.RateLimitPerMin, 1*time.Minute))
		wr.Post("/v1/applications", srv.SubmitApplicationHandler)
		wr.Delete("/v1/applications/{id}", srv.DeleteApplicationHandler)
		wr.Post("/v1/applications/{id}/interview/messages", srv.AppendMessageHandler)
		wr.Post("/v1/applications/{id}/interview/finish", srv.FinishInterviewHandler)
		wr.Post("/v1/vacancies/from-file", srv.VacancyFromFileHandler)
	})

	// Read-only endpoints.
	r.Get("/v1/applications", srv.ListApplicationsHandler)
	r.Get("/v1/applications/{id}", srv.GetApplicationHandler)
	r.Get("/v1/applications/{id}/pre-interview", srv.PreInterviewResultHandler)
	r.Get("/v1/applications/{id}/post-interview", srv.PostInterviewResultHandler)
	r.Get("/v1/applications/{id}/interview/messages", srv.TranscriptHandler)
	r.Get("/v1/applications/{id}/interview/prompt", srv.SessionPromptHandler)

	// Health and metrics.
	r.Get("/healthz", srv.HealthzHandler)
	r.Get("/readyz", srv.ReadyzHandler)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) { promhttp.Handler().ServeHTTP(w, r) })

	return httpserver.SecurityHeaders(r)
}
