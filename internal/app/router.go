package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/palipractice-backend/internal/config"
	"github.com/heartmarshall/palipractice-backend/internal/transport/middleware"
	"github.com/heartmarshall/palipractice-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// routerDeps collects everything the HTTP surface is built from.
type routerDeps struct {
	Logger      *slog.Logger
	Health      *rest.HealthHandler
	Practice    *rest.PracticeHandler
	GraphQL     http.Handler // optional
	Metrics     http.Handler
	Validator   tokenValidator
	RateLimiter *middleware.RateLimiter
	Server      config.ServerConfig
	CORS        config.CORSConfig
}

// newRouter mounts probes and metrics unauthenticated, and the REST and
// GraphQL practice APIs behind bearer auth and the per-user rate limit. The
// access log sits inside auth so lines carry the user ID; probe traffic is
// not logged.
func newRouter(d routerDeps) http.Handler {
	api := http.NewServeMux()
	d.Practice.Register(api)

	guard := middleware.Chain(
		middleware.Auth(d.Validator),
		middleware.Logger(d.Logger),
		d.RateLimiter.Limit(d.Server.RateLimitPerMinute),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.Handle("GET /metrics", d.Metrics)
	mux.Handle("/api/", guard(api))
	if d.GraphQL != nil {
		mux.Handle("POST /query", guard(d.GraphQL))
	}

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.CORS(d.CORS),
	)(mux)
}
