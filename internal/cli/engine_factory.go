package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/wasteland"
	"github.com/aretw0/wasteland/internal/config"
	"github.com/aretw0/wasteland/pkg/adapters/file"
	"github.com/aretw0/wasteland/pkg/adapters/memory"
	"github.com/aretw0/wasteland/pkg/adapters/redis"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/aretw0/wasteland/pkg/observability"
	"github.com/aretw0/wasteland/pkg/persistence/middleware"
	"github.com/aretw0/wasteland/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// StdinPath selects standard input as the map source.
const StdinPath = "-"

// redisPingTimeout bounds the startup check of the report cache.
const redisPingTimeout = 2 * time.Second

// createLoader picks the map source for path.
func createLoader(path string, stdin io.Reader) (ports.MapLoader, error) {
	switch path {
	case "":
		return nil, fmt.Errorf("no map file given (pass it as an argument or set 'map' in %s)", config.DefaultFile)
	case StdinPath:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return memory.NewLoader(string(data)), nil
	}
	return file.NewLoader(path), nil
}

// engineOptions translates the configuration into facade options.
// The returned close function releases the report store, if any.
func engineOptions(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer, debug bool) ([]wasteland.Option, func() error, error) {
	opts := []wasteland.Option{
		wasteland.WithLogger(logger),
		wasteland.WithStepLimit(cfg.StepLimit),
		wasteland.WithParallelism(cfg.Parallelism),
	}

	var hooks []domain.LifecycleHooks
	if debug {
		hooks = append(hooks, observability.LoggingHooks(logger))
	}
	if reg != nil {
		hooks = append(hooks, observability.NewMetrics(reg).Hooks())
	}
	if len(hooks) > 0 {
		opts = append(opts, wasteland.WithLifecycleHooks(observability.Combine(hooks...)))
	}

	closer := func() error { return nil }
	var store ports.ReportStore
	switch {
	case cfg.Redis.URL != "":
		rs, err := createRedisStore(cfg.Redis, logger)
		if err != nil {
			return nil, nil, err
		}
		if rs != nil {
			store = rs
			closer = rs.Close
		}
	case cfg.CacheDir != "":
		store = file.NewStore(cfg.CacheDir)
	}
	if store != nil {
		var mws []middleware.Middleware
		if reg != nil {
			mws = append(mws, middleware.NewMetricsMiddleware(middleware.NewStoreMetrics(reg)))
		}
		if debug {
			mws = append(mws, middleware.NewLoggingMiddleware(logger))
		}
		opts = append(opts, wasteland.WithReportStore(middleware.Chain(store, mws...)))
	}
	return opts, closer, nil
}

// createRedisStore connects the report cache. An unreachable server is
// logged and skipped so that solving still works without the cache.
func createRedisStore(cfg config.RedisConfig, logger *slog.Logger) (*redis.Store, error) {
	storeOpts := []redis.Option{redis.WithTTL(cfg.TTL)}
	if cfg.Prefix != "" {
		storeOpts = append(storeOpts, redis.WithPrefix(cfg.Prefix))
	}

	store, err := redis.NewFromURL(cfg.URL, storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, report cache disabled", "error", err)
		_ = store.Close()
		return nil, nil
	}
	return store, nil
}

// createEngine initializes an engine for cfg.Map with standard CLI conventions.
func createEngine(cfg *config.Config, stdin io.Reader, logger *slog.Logger, reg prometheus.Registerer, debug bool) (*wasteland.Engine, func() error, error) {
	loader, err := createLoader(cfg.Map, stdin)
	if err != nil {
		return nil, nil, err
	}

	opts, closer, err := engineOptions(cfg, logger, reg, debug)
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, wasteland.WithLoader(loader))

	path := cfg.Map
	if path == StdinPath {
		path = "stdin"
	}
	engine, err := wasteland.New(path, opts...)
	if err != nil {
		_ = closer()
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, closer, nil
}
