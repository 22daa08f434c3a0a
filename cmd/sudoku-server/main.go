// Command sudoku-server runs the HTTP boundary around the solving core:
// config from the environment, structured logging, per-client rate
// limiting, and the single POST /solve endpoint.
package main

import (
	"github.com/sudokucore/api/internal/config"
	"github.com/sudokucore/api/internal/logging"
	"github.com/sudokucore/api/internal/ratelimit"
	http "github.com/sudokucore/api/internal/transport/http"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.Mode)

	limiter := ratelimit.New(cfg.RateLimitReplenish, cfg.RateLimitBurst)
	engine := http.NewEngine(cfg, logger, limiter)

	addr := cfg.Addr()
	logger.Info().Str("addr", addr).Str("mode", cfg.Mode).Msg("starting server")
	if err := engine.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
