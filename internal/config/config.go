// Package config loads gridpath settings from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const (
	defaultFormat        = FormatText
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
)

// Config aggregates the command-line configuration.
type Config struct {
	Input             string // grid file; "" or "-" reads stdin
	Demo              bool   // use grid.DemoMaze instead of Input
	ObstacleThreshold int
	Format            string // text|json
	Color             bool
	TUI               bool
	MCP               bool
	MetricsFile       string
	Logging           LoggingConfig
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string // debug|info|warn|error
	Format string // text|json
}

// Load reads defaults from GRIDPATH_* environment variables and then applies
// args (without the program name). flag.ErrHelp is returned unchanged after
// the usage has been printed to stderr.
func Load(args []string) (Config, error) {
	obstacle := grid.DefaultObstacleThreshold
	if v := os.Getenv("GRIDPATH_OBSTACLE"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GRIDPATH_OBSTACLE: %w", err)
		}
		obstacle = parsed
	}
	color := false
	if v := os.Getenv("GRIDPATH_COLOR"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GRIDPATH_COLOR: %w", err)
		}
		color = parsed
	}
	format := envOrDefault("GRIDPATH_FORMAT", defaultFormat)
	logLevel := envOrDefault("GRIDPATH_LOG_LEVEL", defaultLoggingLevel)
	logFormat := envOrDefault("GRIDPATH_LOG_FORMAT", defaultLoggingFormat)
	metricsFile := os.Getenv("GRIDPATH_METRICS_FILE")

	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {
		fmt.Fprintln(flagSet.Output(), "usage: gridpath [flags] [file|-]")
		flagSet.PrintDefaults()
	}
	flagObstacle := flagSet.Int("obstacle", obstacle, "smallest weight treated as a wall")
	flagFormat := flagSet.String("format", format, "output format: text|json")
	flagColor := flagSet.Bool("color", color, "colour the rendered grid")
	flagTUI := flagSet.Bool("tui", false, "step through the path interactively")
	flagMCP := flagSet.Bool("mcp", false, "serve the find_path tool over MCP stdio")
	flagDemo := flagSet.Bool("demo", false, "solve the built-in demo maze")
	flagMetrics := flagSet.String("metrics-file", metricsFile, "write Prometheus metrics to this file")
	flagLogLevel := flagSet.String("log-level", logLevel, "log level: debug|info|warn|error")
	flagLogFormat := flagSet.String("log-format", logFormat, "log format: text|json")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagSet.SetOutput(os.Stderr)
			flagSet.Usage()
		}
		return Config{}, err
	}
	if flagSet.NArg() > 1 {
		return Config{}, fmt.Errorf("expected at most one input file, got %d", flagSet.NArg())
	}

	cfg := Config{
		Input:             strings.TrimSpace(flagSet.Arg(0)),
		Demo:              *flagDemo,
		ObstacleThreshold: *flagObstacle,
		Format:            strings.ToLower(strings.TrimSpace(*flagFormat)),
		Color:             *flagColor,
		TUI:               *flagTUI,
		MCP:               *flagMCP,
		MetricsFile:       strings.TrimSpace(*flagMetrics),
		Logging: LoggingConfig{
			Level:  strings.ToLower(strings.TrimSpace(*flagLogLevel)),
			Format: strings.ToLower(strings.TrimSpace(*flagLogFormat)),
		},
	}

	if cfg.ObstacleThreshold <= 0 {
		return Config{}, fmt.Errorf("obstacle threshold must be positive, got %d", cfg.ObstacleThreshold)
	}
	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return Config{}, fmt.Errorf("unsupported format: %s", cfg.Format)
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return Config{}, fmt.Errorf("unsupported log format: %s", cfg.Logging.Format)
	}
	if cfg.TUI && cfg.MCP {
		return Config{}, errors.New("-tui and -mcp cannot be combined")
	}
	if cfg.Demo && cfg.Input != "" {
		return Config{}, errors.New("-demo cannot be combined with an input file")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
