package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	otelexp "github.com/emiliopalmerini/projectboard/internal/adapters/otel"
	redisadapter "github.com/emiliopalmerini/projectboard/internal/adapters/redis"
	"github.com/emiliopalmerini/projectboard/internal/infrastructure/config"
	"github.com/emiliopalmerini/projectboard/internal/logging"
	"github.com/emiliopalmerini/projectboard/internal/observers"
	"github.com/emiliopalmerini/projectboard/internal/ports"
	"github.com/emiliopalmerini/projectboard/internal/state"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config    *config.Server
	Logger    *zap.Logger
	Store     *state.Store
	Metrics   ports.MetricsExporter
	Publisher ports.SnapshotPublisher
	Relay     *observers.Relay
}

// NewAppContext creates the single store for this process and the
// collaborators that observe it. Optional collaborators that fail to start
// degrade to no-ops.
func NewAppContext(ctx context.Context, cfg *config.Server) (*AppContext, error) {
	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	gen := state.RandomIDs()
	if cfg.IDStrategy == config.IDStrategyCounter {
		gen = state.CounterIDs()
	}

	publisher := newSnapshotPublisher(ctx, cfg.Redis, logger)
	return &AppContext{
		Config:    cfg,
		Logger:    logger,
		Store:     state.New(state.WithIDGenerator(gen), state.WithLogger(logger)),
		Metrics:   newMetricsExporter(ctx, cfg.OTEL, logger),
		Publisher: publisher,
		Relay:     observers.NewRelay(publisher, logger),
	}, nil
}

func newMetricsExporter(ctx context.Context, cfg config.OTEL, logger *zap.Logger) ports.MetricsExporter {
	if !cfg.Enabled {
		return otelexp.NewNoOpExporter()
	}
	exp, err := otelexp.NewExporter(ctx, otelexp.Config{
		Endpoint: cfg.Endpoint,
		Enabled:  cfg.Enabled,
		Insecure: cfg.Insecure,
	})
	if err != nil {
		logger.Warn("metrics exporter unavailable, continuing without metrics", zap.Error(err))
		return otelexp.NewNoOpExporter()
	}
	return exp
}

func newSnapshotPublisher(ctx context.Context, cfg config.Redis, logger *zap.Logger) ports.SnapshotPublisher {
	if cfg.Addr == "" {
		return redisadapter.NewNoOpPublisher()
	}
	pub, err := redisadapter.Dial(ctx, cfg.Addr, cfg.Channel)
	if err != nil {
		logger.Warn("snapshot publisher unavailable, continuing without it", zap.Error(err))
		return redisadapter.NewNoOpPublisher()
	}
	logger.Info("publishing snapshots", zap.String("channel", pub.Channel()))
	return pub
}

// RegisterObservers attaches the metrics and publishing listeners. Call it
// after the views are built so they are notified first. Snapshots reach the
// publisher through the relay goroutine, which Close stops.
func (a *AppContext) RegisterObservers() {
	a.Store.AddListener(observers.Metrics(a.Metrics, a.Logger))
	a.Relay.Start()
	a.Store.AddListener(a.Relay.Listen)
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close(ctx context.Context) error {
	var errs []error
	if a.Relay != nil {
		a.Relay.Stop()
	}
	if a.Metrics != nil {
		if err := a.Metrics.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close metrics exporter: %w", err))
		}
	}
	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close snapshot publisher: %w", err))
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return errors.Join(errs...)
}
