// ABOUTME: HTTP server assembly for the stream API
// ABOUTME: Wires the mux, CORS, logging and rate limiting into one handler chain

package api

import (
	"net/http"

	"github.com/rs/cors"

	"zhihu-rss-api/api/handlers"
	"zhihu-rss-api/api/middleware"
	"zhihu-rss-api/core/interfaces"
)

// Config holds configuration for the API surface
type Config struct {
	Logger interfaces.Logger

	// RateLimitRPS is the sustained per-IP request rate; zero disables limiting
	RateLimitRPS float64

	// RateLimitBurst is the per-IP burst allowance
	RateLimitBurst int
}

// NewRouter builds the full handler chain for the stream API
func NewRouter(cfg Config, streamHandler *handlers.StreamHandler) http.Handler {
	mux := http.NewServeMux()
	streamHandler.RegisterRoutes(mux)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var handler http.Handler = mux

	if cfg.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		handler = middleware.RateLimitMiddleware(limiter)(handler)
	}

	if cfg.Logger != nil {
		handler = middleware.RequestLoggingMiddleware(cfg.Logger)(handler)
	}

	handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}).Handler(handler)

	return handler
}
