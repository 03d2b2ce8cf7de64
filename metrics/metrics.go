// Package metrics records search statistics as Prometheus collectors on a
// private registry, so several recorders can live in one process and the
// default registry stays untouched. Each recorded search is also traced as
// an OpenTelemetry span.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Outcome label values for gridpath_searches_total.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

const tracerName = "github.com/katalvlaran/gridpath/metrics"

// Recorder owns a registry and the collectors registered on it.
type Recorder struct {
	reg    *prometheus.Registry
	tracer trace.Tracer

	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	duration prometheus.Histogram
	closed   prometheus.Counter
	enqueued prometheus.Counter
	pathCost prometheus.Gauge
	pathLen  prometheus.Gauge
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithTracerProvider traces searches with tp instead of the global provider.
// A nil tp is ignored.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Recorder) {
		if tp != nil {
			r.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder(opts ...Option) *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	r := &Recorder{
		reg:    reg,
		tracer: otel.Tracer(tracerName),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Total searches by outcome",
		}, []string{"outcome"}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_expanded_nodes",
			Help:    "Nodes moved to the closed set per search",
			Buckets: []float64{1, 5, 25, 100, 500, 2500, 10000, 50000},
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Wall time per search",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		closed: f.NewCounter(prometheus.CounterOpts{
			Name: "gridpath_nodes_closed_total",
			Help: "Nodes expanded across all searches",
		}),
		enqueued: f.NewCounter(prometheus.CounterOpts{
			Name: "gridpath_nodes_enqueued_total",
			Help: "Nodes inserted into the open set across all searches",
		}),
		pathCost: f.NewGauge(prometheus.GaugeOpts{
			Name: "gridpath_path_cost",
			Help: "Cost of the last path found",
		}),
		pathLen: f.NewGauge(prometheus.GaugeOpts{
			Name: "gridpath_path_length",
			Help: "Number of cells on the last path found",
		}),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Registry exposes the private registry, e.g. for promhttp or testutil.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Hooks returns search options that feed the node counters.
func (r *Recorder) Hooks() []astar.Option {
	return []astar.Option{
		astar.WithOnExpand(func(*astar.Node) { r.closed.Inc() }),
		astar.WithOnEnqueue(func(*astar.Node) { r.enqueued.Inc() }),
	}
}

// Observe records the outcome of one finished search. The path gauges keep
// the values of the last successful search.
func (r *Recorder) Observe(res *astar.Result) {
	if res == nil {
		return
	}
	r.expanded.Observe(float64(res.Expanded))
	if !res.Found {
		r.searches.WithLabelValues(OutcomeUnreachable).Inc()
		return
	}
	r.searches.WithLabelValues(OutcomeFound).Inc()
	r.pathCost.Set(res.Cost)
	r.pathLen.Set(float64(res.Path.Len()))
}

// Search is SearchContext with a background context.
func (r *Recorder) Search(g *grid.Grid, opts ...astar.Option) (*astar.Result, error) {
	return r.SearchContext(context.Background(), g, opts...)
}

// SearchContext runs astar.Search on g with the recorder's hooks in front of
// opts, then records the result and its duration. The search runs inside a
// span that is a child of any span in ctx. Errors are counted under
// OutcomeError and returned unchanged.
func (r *Recorder) SearchContext(ctx context.Context, g *grid.Grid, opts ...astar.Option) (*astar.Result, error) {
	_, span := r.tracer.Start(ctx, "astar.Search")
	defer span.End()
	if g != nil {
		span.SetAttributes(
			attribute.Int("grid.rows", g.Rows()),
			attribute.Int("grid.cols", g.Cols()),
			attribute.Int("grid.obstacle_threshold", g.ObstacleThreshold()),
		)
	}

	start := time.Now()
	res, err := astar.Search(g, append(r.Hooks(), opts...)...)
	r.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		r.searches.WithLabelValues(OutcomeError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return nil, err
	}
	r.Observe(res)

	span.SetAttributes(
		attribute.Bool("path.found", res.Found),
		attribute.Int("search.expanded", res.Expanded),
		attribute.Float64("path.cost", res.Cost),
		attribute.Int("path.length", res.Path.Len()),
	)
	span.SetStatus(codes.Ok, "search finished")

	return res, nil
}

// WriteTextfile writes every collector in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
