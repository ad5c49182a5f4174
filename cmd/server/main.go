// Package main runs the ward alert HTTP service. Dependencies are wired with
// samber/do v2; SIGINT/SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/agent"
	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/directory"
	adapthttp "github.com/jsamuelsen11/ward-alert-service/internal/adapters/http"
	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/ward-alert-service/internal/app"
	"github.com/jsamuelsen11/ward-alert-service/internal/domain/broadcast"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/config"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/health"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/logging"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/ward-alert-service/internal/ports"
)

// serverShutdownTimeout also bounds how long in-flight broadcasts may keep
// the process alive after a signal.
const (
	serverShutdownTimeout = 30 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out := logging.Output(cfg.Log)
	defer func() { _ = out.Close() }()
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, out)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*agent.Dispatcher](injector))
	if db := do.MustInvoke[*sql.DB](injector); db != nil {
		registry.Register(directory.NewDBChecker(db))
		defer func() { _ = db.Close() }()
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders holds the providers to flush on exit. Every field is nil when
// telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}

// directorySnapshot keeps the loaded directory and, for the postgres source,
// the pool it came from.
type directorySnapshot struct {
	dir *directory.Static
	db  *sql.DB
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*directorySnapshot, error) {
		dir, db, err := directory.Load(context.Background(), cfg.Directory, logger)
		if err != nil {
			return nil, fmt.Errorf("loading directory: %w", err)
		}
		return &directorySnapshot{dir: dir, db: db}, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Directory, error) {
		return do.MustInvoke[*directorySnapshot](i).dir, nil
	})

	do.Provide(injector, func(i do.Injector) (*sql.DB, error) {
		return do.MustInvoke[*directorySnapshot](i).db, nil
	})

	do.Provide(injector, func(_ do.Injector) (*broadcast.Encoder, error) {
		return broadcast.NewEncoder(cfg.Agent.Prefix, cfg.Agent.Gateway, cfg.Agent.Group)
	})

	do.Provide(injector, func(i do.Injector) (*agent.Dispatcher, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return agent.New(cfg.Agent, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BroadcastService, error) {
		return app.NewBroadcastService(
			do.MustInvoke[ports.Directory](i),
			do.MustInvoke[*broadcast.Encoder](i),
			do.MustInvoke[*agent.Dispatcher](i),
			logger,
			app.WithWorkDir(cfg.Agent.WorkDir),
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DirectoryService, error) {
		return app.NewDirectoryService(do.MustInvoke[ports.Directory](i), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := adapthttp.Handlers{
			Broadcast: handlers.NewBroadcastHandler(do.MustInvoke[ports.BroadcastService](i)),
			Directory: handlers.NewDirectoryHandler(do.MustInvoke[ports.DirectoryService](i)),
			Health:    handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, cfg.Server.RequestTimeout,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
