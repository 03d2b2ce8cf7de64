// Package mcpserver exposes the path finder to Model Context Protocol clients
// over stdio: a find_path tool and the demo maze as a resource.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/render"
)

// Names of the registered tool and resource.
const (
	ToolFindPath = "find_path"
	DemoURI      = "gridpath://demo"
)

// Server adapts the path finder to the Model Context Protocol.
type Server struct {
	mcpServer *server.MCPServer
	recorder  *metrics.Recorder
	logger    *slog.Logger
}

// NewServer creates a server whose searches are recorded by rec.
// A nil rec gets a fresh Recorder; a nil logger discards log output.
func NewServer(version string, rec *metrics.Recorder, logger *slog.Logger) *Server {
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		mcpServer: server.NewMCPServer("gridpath", version),
		recorder:  rec,
		logger:    logger,
	}
	s.registerResources()
	s.registerTools()
	return s
}

// Serve runs the server on stdin/stdout until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(
		DemoURI,
		"Demo maze",
		mcp.WithResourceDescription("A 10x10 weighted maze in find_path input format"),
		mcp.WithMIMEType("text/plain"),
	), s.handleReadDemo)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(
		ToolFindPath,
		mcp.WithDescription("Find a low-cost 8-directional path on a weighted grid with A*. "+
			"Rows are lines, cells are whitespace-separated: non-negative weights, S for start, E for end. "+
			"Cells with weight at or above the obstacle threshold are impassable."),
		mcp.WithString("grid", mcp.Required(), mcp.Description("The grid, one row per line")),
		mcp.WithNumber("obstacle", mcp.Description(fmt.Sprintf("Obstacle threshold (default %d)", grid.DefaultObstacleThreshold))),
	), s.handleFindPath)
}

func (s *Server) handleReadDemo(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     grid.DemoMaze,
		},
	}, nil
}

func (s *Server) handleFindPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := mcp.ParseString(request, "grid", "")
	obstacle := mcp.ParseFloat64(request, "obstacle", grid.DefaultObstacleThreshold)

	if obstacle != math.Trunc(obstacle) || obstacle > math.MaxInt32 {
		return mcp.NewToolResultError(fmt.Sprintf("obstacle must be a whole number, got %v", obstacle)), nil
	}
	g, err := grid.Parse(strings.NewReader(text), grid.Options{ObstacleThreshold: int(obstacle)})
	if err != nil {
		s.logger.Debug("find_path rejected grid", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("invalid grid: %v", err)), nil
	}

	res, err := s.recorder.SearchContext(ctx, g)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	s.logger.Info("find_path",
		"rows", g.Rows(), "cols", g.Cols(),
		"found", res.Found, "cost", res.Cost, "expanded", res.Expanded)

	data, err := json.MarshalIndent(render.NewReport(g, res), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
