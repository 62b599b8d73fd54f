package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noaa-owp/reach-decomp/internal/config"
)

// NewRouter assembles the HTTP surface described in §4.9: the decomposition
// endpoint, a health check, and a Prometheus scrape endpoint. Grounded in
// the teacher pack's chi.NewRouter()/router.Route() wiring
// (aipilotbyjd-linkflow-v2/internal/api).
func NewRouter(cfg *config.Config) http.Handler {
	h := NewHandler(&cfg.Ingest)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.ReadTimeout + cfg.Server.WriteTimeout + 5*time.Second))

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/decompose", h.Decompose)
	})

	return r
}
