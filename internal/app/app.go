package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/palipractice-backend/internal/adapter/postgres"
	masteryrepo "github.com/heartmarshall/palipractice-backend/internal/adapter/postgres/mastery"
	settingsrepo "github.com/heartmarshall/palipractice-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/palipractice-backend/internal/adapter/redis"
	"github.com/heartmarshall/palipractice-backend/internal/adapter/redis/session"
	"github.com/heartmarshall/palipractice-backend/internal/adapter/sqlite/training"
	"github.com/heartmarshall/palipractice-backend/internal/auth"
	"github.com/heartmarshall/palipractice-backend/internal/config"
	"github.com/heartmarshall/palipractice-backend/internal/metrics"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice/queue"
	"github.com/heartmarshall/palipractice-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/palipractice-backend/internal/transport/middleware"
	"github.com/heartmarshall/palipractice-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL and Redis, loads the training catalog and serves HTTP until ctx
// is cancelled, then drains in-flight requests.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		buildAttr(),
		slog.String("log_level", cfg.Log.Level),
	)

	started := time.Now()
	cat, stats, err := training.LoadFile(ctx, cfg.Training.Path)
	if err != nil {
		return fmt.Errorf("load training catalog: %w", err)
	}
	logger.Info("training catalog loaded",
		slog.String("path", cfg.Training.Path),
		slog.Int("nouns", stats.Nouns),
		slog.Int("verbs", stats.Verbs),
		slog.Int("attested_forms", stats.AttestedForms),
		slog.Int("irregular_forms", stats.IrregularForms),
		slog.Duration("took", time.Since(started)),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	m := metrics.New()
	masteries := masteryrepo.New(pool)

	svc := practice.NewService(
		logger,
		masteries,
		settingsrepo.New(pool),
		session.New(rdb, cfg.Redis.KeyPrefix, cfg.Practice.SessionTTL),
		cat,
		m,
		postgres.NewTxManager(pool),
		practiceConfig(cfg.Practice),
	)

	provider := practice.NewProvider(svc)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := newRouter(routerDeps{
		Logger: logger,
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.HealthCheck{Name: "database", Pinger: pool},
			rest.HealthCheck{Name: "redis", Pinger: rest.PingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			})},
		),
		Practice:    rest.NewPracticeHandler(svc, provider, logger),
		GraphQL:     newGraphQLHandler(logger, svc, provider, cat, &dataloader.Repos{Mastery: masteries}),
		Metrics:     m.Handler(),
		Validator:   auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		RateLimiter: limiter,
		Server:      cfg.Server,
		CORS:        cfg.CORS,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", timeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}

func practiceConfig(c config.PracticeConfig) practice.Config {
	return practice.Config{
		Queue: queue.Options{
			LemmaGapCap:    c.LemmaGapCap,
			ComboGapCap:    c.ComboGapCap,
			CategoryGapCap: c.CategoryGapCap,
			MinReviewRun:   c.MinReviewRun,
			MaxReviewRun:   c.MaxReviewRun,
		},
		GoalMultiplier: c.GoalMultiplier,
	}
}
