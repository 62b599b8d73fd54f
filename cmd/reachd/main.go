// Command reachd is the thin HTTP endpoint of §4.9: it wires
// configuration, logging, and the decomposition engine together the way
// the original's v4_routing.py FastAPI route did, without implementing
// the hydrodynamic solver that route ultimately invoked.
package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/noaa-owp/reach-decomp/internal/api"
	"github.com/noaa-owp/reach-decomp/internal/config"
	"github.com/noaa-owp/reach-decomp/internal/obslog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	obslog.Init(cfg.Log.Environment, cfg.Log.Level)

	log.Info().
		Str("addr", cfg.Server.Addr()).
		Str("env", cfg.Log.Environment).
		Msg("starting reachd")

	router := api.NewRouter(cfg)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("reachd server stopped")
	}
}
