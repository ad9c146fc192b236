package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/wasteland"
	httpAdapter "github.com/aretw0/wasteland/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// shutdownTimeout is the deadline given to in-flight requests on shutdown.
const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP adapter on the configured port until ctx is done.
func Serve(ctx context.Context, opts Options) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", opts.Config.Server.Port))
	if err != nil {
		return err
	}
	return serveOn(ctx, opts, ln)
}

func serveOn(ctx context.Context, opts Options, ln net.Listener) error {
	logger, err := opts.logger()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	engineOpts, closeStore, err := engineOptions(opts.Config, logger, reg, opts.Debug)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := wasteland.NewService(engineOpts...)
	logger.Debug("walks are bounded", "step_limit", svc.StepLimit())

	handler := httpAdapter.NewHandler(svc,
		httpAdapter.WithGatherer(reg),
		httpAdapter.WithLogger(logger),
		httpAdapter.WithVersion(wasteland.Version),
	)
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Wasteland server listening", "address", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		return nil
	}
}
