// Package metrics records search runs as Prometheus metrics on a private
// registry and renders them in the text exposition format.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/blindsearch/search"
)

// Recorder owns the search metrics.
type Recorder struct {
	reg       *prometheus.Registry
	runs      *prometheus.CounterVec
	expanded  *prometheus.CounterVec
	generated *prometheus.CounterVec
	frontier  *prometheus.GaugeVec
	duration  *prometheus.HistogramVec
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blindsearch_runs_total",
				Help: "Total number of search runs by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		expanded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blindsearch_nodes_expanded_total",
				Help: "Nodes popped from the frontier",
			},
			[]string{"mode"},
		),
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blindsearch_nodes_generated_total",
				Help: "Nodes pushed onto the frontier, root included",
			},
			[]string{"mode"},
		),
		frontier: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "blindsearch_frontier_peak",
				Help: "Largest frontier observed in the last run",
			},
			[]string{"mode"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blindsearch_run_duration_seconds",
				Help:    "Wall-clock duration of search runs",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"mode"},
		),
	}
	r.reg.MustRegister(r.runs, r.expanded, r.generated, r.frontier, r.duration)

	return r
}

// Observe records one finished run. outcome is "solved", "unreachable", or
// "error" when err is non-nil.
func (r *Recorder) Observe(mode search.Mode, res *search.Result, err error, elapsed time.Duration) {
	m := mode.String()
	outcome := "error"
	if err == nil && res != nil {
		outcome = res.Outcome.String()
		r.expanded.WithLabelValues(m).Add(float64(res.Stats.Expanded))
		r.generated.WithLabelValues(m).Add(float64(res.Stats.Generated))
		r.frontier.WithLabelValues(m).Set(float64(res.Stats.MaxFrontier))
	}
	r.runs.WithLabelValues(m, outcome).Inc()
	r.duration.WithLabelValues(m).Observe(elapsed.Seconds())
}

// Write renders every metric family in the Prometheus text format.
func (r *Recorder) Write(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
