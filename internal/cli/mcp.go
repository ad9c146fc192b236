package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/wasteland"
	"github.com/aretw0/wasteland/pkg/adapters/mcp"
	"github.com/aretw0/wasteland/pkg/domain"
)

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// ServeMCP exposes the solver as an MCP server. A configured map is loaded
// up front and published as a resource.
func ServeMCP(ctx context.Context, opts Options, transport string, port int) error {
	cfg := opts.Config
	logger, err := opts.logger()
	if err != nil {
		return err
	}

	var current *domain.Map
	if cfg.Map != "" {
		if cfg.Map == StdinPath {
			return fmt.Errorf("the MCP server cannot read its map from stdin")
		}
		loader, err := createLoader(cfg.Map, opts.Stdin)
		if err != nil {
			return err
		}
		if current, err = loader.Load(ctx); err != nil {
			return err
		}
	}

	engineOpts, closeStore, err := engineOptions(cfg, logger, nil, opts.Debug)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := wasteland.NewService(engineOpts...)
	logger.Debug("walks are bounded", "step_limit", svc.StepLimit())
	server := mcp.NewServer(svc, current, wasteland.Version)

	switch transport {
	case "", TransportStdio:
		logger.Debug("MCP server on stdio")
		return server.ServeStdio()
	case TransportSSE:
		return server.ServeSSE(ctx, port)
	}
	return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
}
