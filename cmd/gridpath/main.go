package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/mcpserver"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/tui"
)

const version = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitNoPath  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitInvalid
	}
	logger := logging.NewWithWriter(cfg.Logging, stderr)
	rec := metrics.NewRecorder()

	if cfg.MCP {
		logger.Info("serving MCP on stdio", "version", version)
		srv := mcpserver.NewServer(version, rec, logger)
		if err := srv.Serve(); err != nil {
			logger.Error("mcp server stopped", "error", err)
			return exitInvalid
		}
		return flushMetrics(cfg, rec, logger)
	}

	g, err := loadGrid(cfg, stdin)
	if err != nil {
		logger.Debug("grid rejected", "input", cfg.Input, "error", err)
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitInvalid
	}
	logger.Debug("grid loaded", "rows", g.Rows(), "cols", g.Cols(),
		"start", g.Start().String(), "end", g.End().String())

	res, err := rec.Search(g)
	if err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitInvalid
	}
	logger.Info("search finished", "found", res.Found, "cost", res.Cost, "expanded", res.Expanded)
	if !res.Found {
		logger.Info("end is walled off from start",
			"start_region", len(g.RegionOf(g.Start())), "regions", len(g.Regions()))
	}

	if code := flushMetrics(cfg, rec, logger); code != exitOK {
		return code
	}

	switch {
	case cfg.TUI:
		if err := tui.Run(g, res, render.DefaultTheme()); err != nil {
			logger.Error("tui stopped", "error", err)
			return exitInvalid
		}
		return exitOK

	case cfg.Format == config.FormatJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(render.NewReport(g, res)); err != nil {
			logger.Error("write report", "error", err)
			return exitInvalid
		}
		return exitOK
	}

	theme := render.NewTheme(lipgloss.NewRenderer(stdout))
	if cfg.Color {
		r := lipgloss.NewRenderer(stdout)
		r.SetColorProfile(termenv.ANSI256)
		theme = render.NewTheme(r)
	}
	if !res.Found {
		fmt.Fprintln(stdout, "No solution!")
		fmt.Fprintln(stdout, render.Styled(g, nil, theme))
		return exitNoPath
	}
	fmt.Fprintln(stdout, "Path found:")
	fmt.Fprintln(stdout, render.Coordinates(res.Path))
	fmt.Fprintf(stdout, "cost %.3f, %d nodes expanded\n\n", res.Cost, res.Expanded)
	fmt.Fprintln(stdout, render.Styled(g, res.Path, theme))

	return exitOK
}

// loadGrid reads the demo maze, stdin ("" or "-") or the named file.
func loadGrid(cfg config.Config, stdin io.Reader) (*grid.Grid, error) {
	opts := grid.Options{ObstacleThreshold: cfg.ObstacleThreshold}
	switch {
	case cfg.Demo:
		return grid.Parse(strings.NewReader(grid.DemoMaze), opts)
	case cfg.Input == "" || cfg.Input == "-":
		return grid.Parse(stdin, opts)
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return grid.Parse(f, opts)
}

func flushMetrics(cfg config.Config, rec *metrics.Recorder, logger *slog.Logger) int {
	if cfg.MetricsFile == "" {
		return exitOK
	}
	if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
		logger.Error("metrics not written", "error", err)
		return exitInvalid
	}
	logger.Debug("metrics written", "path", cfg.MetricsFile)
	return exitOK
}
