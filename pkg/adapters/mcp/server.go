package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/wasteland/internal/compiler"
	"github.com/aretw0/wasteland/internal/presentation/graph"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/aretw0/wasteland/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MapURI is the resource exposing the map the server was started with.
const MapURI = "wasteland://map"

// SolveArgs are the arguments of the solve tool.
// Without any query field the default query (AAA -> ZZZ, *A -> *Z) applies.
type SolveArgs struct {
	Map         string `json:"map"`
	Start       string `json:"start,omitempty"`
	Goal        string `json:"goal,omitempty"`
	StartSuffix string `json:"start_suffix,omitempty"`
	GoalSuffix  string `json:"goal_suffix,omitempty"`
}

func (a SolveArgs) query() domain.Query {
	if a.Start == "" && a.Goal == "" && a.StartSuffix == "" && a.GoalSuffix == "" {
		return domain.DefaultQuery()
	}
	return domain.Query{Start: a.Start, Goal: a.Goal, StartSuffix: a.StartSuffix, GoalSuffix: a.GoalSuffix}
}

// Server exposes a MapSolver as an MCP Server.
type Server struct {
	solver    ports.MapSolver
	parser    *compiler.Parser
	current   *domain.Map
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
// When current is not nil it is published as the MapURI resource and used
// by the tools whenever the map argument is empty.
func NewServer(solver ports.MapSolver, current *domain.Map, version string) *Server {
	s := &Server{
		solver:    solver,
		parser:    compiler.NewParser(),
		current:   current,
		mcpServer: server.NewMCPServer("wasteland-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	if current != nil {
		s.registerResources()
	}
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	mapDesc := "Map document: an L/R instruction line, a blank line, then one 'XXX = (YYY, ZZZ)' record per line"
	if s.current != nil {
		mapDesc += " (optional, defaults to " + MapURI + ")"
	}

	// TOOL: solve
	solveTool := mcp.NewTool("solve",
		mcp.WithDescription("Count the steps of the single walk and the synchronized multi-start walk over a left/right node map."),
		mcp.WithString("map", mcp.Description(mapDesc)),
		mcp.WithString("start", mcp.Description("Start node of the single walk (e.g. AAA)")),
		mcp.WithString("goal", mcp.Description("Goal node of the single walk (e.g. ZZZ)")),
		mcp.WithString("start_suffix", mcp.Description("Suffix selecting the start nodes to synchronize (e.g. A)")),
		mcp.WithString("goal_suffix", mcp.Description("Suffix selecting the goal nodes to synchronize (e.g. Z)")),
		mcp.WithOutputSchema[domain.Report](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	// TOOL: graph
	s.mcpServer.AddTool(mcp.NewTool("graph",
		mcp.WithDescription("Render the map as a Mermaid flowchart."),
		mcp.WithString("map", mcp.Description(mapDesc)),
	), s.handleGraph)
}

func (s *Server) resolveMap(text string) (*domain.Map, error) {
	if strings.TrimSpace(text) == "" {
		if s.current == nil {
			return nil, fmt.Errorf("map argument is required")
		}
		return s.current, nil
	}
	return s.parser.ParseString(text)
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args SolveArgs) (domain.Report, error) {
	m, err := s.resolveMap(args.Map)
	if err != nil {
		return domain.Report{}, fmt.Errorf("invalid map: %w", err)
	}

	report, err := s.solver.SolveMap(ctx, m, args.query())
	if err != nil {
		slog.Debug("MCP solve failed", "error", err)
		return domain.Report{}, fmt.Errorf("solve failed: %w", err)
	}
	return *report, nil
}

func (s *Server) handleGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	m, err := s.resolveMap(request.GetString("map", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid map: %v", err)), nil
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(m, domain.DefaultQuery(), nil)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(MapURI, "Current Map",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      MapURI,
				MIMEType: "text/plain",
				Text:     s.current.Canonical(),
			},
		}, nil
	})
}
