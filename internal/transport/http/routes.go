// Package http is the boundary layer: gin routing, request/response JSON
// shapes, and the mapping from core errors to JSON error bodies. Solve
// errors are reported per item inside a 200 response; only a body that
// cannot be decoded gets a 400, and no core error kind maps to its own
// 4xx status. No solving
// logic lives here -- every request is a thin wrapper around one or more
// calls to internal/solver.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sudokucore/api/internal/config"
	"github.com/sudokucore/api/internal/ratelimit"
)

// NewEngine builds a gin.Engine with logging, rate limiting, and the
// /solve route wired in. mode selects gin's release/debug behaviour.
func NewEngine(cfg config.Config, logger zerolog.Logger, limiter *ratelimit.Limiter) *gin.Engine {
	if cfg.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	if limiter != nil {
		r.Use(limiter.Middleware())
	}

	r.GET("/health", healthHandler)
	r.POST("/solve", solveHandler)

	return r
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("request")
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
