package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-api/internal/config"
	"github.com/jwalitptl/clinic-api/internal/handler/health"
	"github.com/jwalitptl/clinic-api/internal/middleware"
	"github.com/jwalitptl/clinic-api/internal/repository/postgres"
	"github.com/jwalitptl/clinic-api/internal/router"
	"github.com/jwalitptl/clinic-api/pkg/logger"
	"github.com/jwalitptl/clinic-api/pkg/messaging"
	"github.com/jwalitptl/clinic-api/pkg/messaging/redis"
	"github.com/jwalitptl/clinic-api/pkg/metrics"
)

func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, log.Logger, fmt.Errorf("failed to load configuration: %w", err)
	}
	l := logger.Setup(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	return cfg, l, nil
}

func runServer(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, l, err := loadConfig()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Server.GinMode)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	// an unreachable database is not fatal; every query will fail with 400
	// until it comes back
	if err := postgres.Ping(ctx, db, postgres.PingTimeout); err != nil {
		l.Error().Err(err).Str("host", cfg.Database.Host).Msg("database connection failed")
	} else {
		l.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("connected to database")
	}

	broker := newBroker(ctx, cfg.Events, l)
	defer broker.Close()

	m := metrics.New(cfg.Metrics.Namespace)

	r := router.NewRouter(
		router.RouterConfig{
			StaticDir:  cfg.Server.StaticDir,
			CORSConfig: middleware.DefaultCORSConfig(),
			Metrics:    m,
		},
		health.NewHandler(db),
		router.Resources(router.ResourceDeps{
			Base:      postgres.NewBaseRepository(db),
			Publisher: messaging.NewPublisher(broker, cfg.Events.Channel),
			Metrics:   m,
			Logger:    l,
		})...,
	)
	r.Setup()

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: r.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	l.Info().Msg("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	l.Info().Msg("server exited properly")
	return nil
}

// newBroker connects to redis when configured. Any failure falls back to
// the no-op broker so the API keeps serving.
func newBroker(ctx context.Context, cfg config.EventsConfig, l zerolog.Logger) messaging.Broker {
	if !cfg.EventsEnabled() {
		return messaging.NewNoopBroker()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	broker, err := redis.NewRedisBroker(connectCtx, redis.DefaultConfig(cfg.RedisURL), l)
	if err != nil {
		l.Error().Err(err).Msg("change events disabled")
		return messaging.NewNoopBroker()
	}

	l.Info().Str("channel", cfg.Channel).Msg("publishing change events")
	return broker
}
