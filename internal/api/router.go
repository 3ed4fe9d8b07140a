package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Concord/internal/config"
	"github.com/MikeSquared-Agency/Concord/internal/hermes"
	"github.com/MikeSquared-Agency/Concord/internal/metrics"
	"github.com/MikeSquared-Agency/Concord/internal/scoring"
)

func NewRouter(s *scoring.Scorer, h hermes.Client, m *metrics.Recorder, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimit))

	defaults := s.Defaults()
	compute := NewComputeHandler(s, h, m, logger)
	catalog := NewCatalogHandler(s.Roster(), defaults.Activation, defaults.Normalize)
	admin := NewAdminHandler(cfg, h != nil)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/countries", catalog.Countries)
		r.Get("/activations", catalog.Activations)

		r.Post("/compute", compute.Compute)
		r.Post("/normalize", compute.Normalize)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Get("/admin/config", admin.Config)
		})
	})

	r.Handle("/*", staticHandler(logger))

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
