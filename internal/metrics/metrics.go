// Package metrics exposes stripper activity as Prometheus counters.
package metrics

import (
	"errors"
	"net/http"

	"github.com/aretw0/htmlpp/pkg/strip"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Line outcomes used as the "outcome" label.
const (
	OutcomeEmitted    = "emitted"
	OutcomeSuppressed = "suppressed"
	OutcomeMarker     = "marker"
	OutcomeMalformed  = "malformed"
)

// Run results used as the "result" label.
const (
	ResultOK        = "ok"
	ResultMalformed = "malformed"
	ResultError     = "error"
)

// Recorder implements strip.Observer on top of a private registry.
type Recorder struct {
	registry *prometheus.Registry
	lines    *prometheus.CounterVec
	runs     *prometheus.CounterVec
}

var _ strip.Observer = (*Recorder)(nil)

// New creates a Recorder with its own registry, so tests and servers don't collide on the
// global one.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "htmlpp_strip_lines_total",
				Help: "Lines processed by the debug stripper, by outcome",
			},
			[]string{"outcome"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "htmlpp_strip_runs_total",
				Help: "Completed stripper runs, by result",
			},
			[]string{"result"},
		),
	}
	r.registry.MustRegister(r.lines, r.runs)
	return r
}

// Observe records a single line.
func (r *Recorder) Observe(e strip.Event) {
	r.lines.WithLabelValues(outcome(e)).Inc()
}

// ObserveRun records the result of a whole run.
func (r *Recorder) ObserveRun(err error) {
	switch {
	case err == nil:
		r.runs.WithLabelValues(ResultOK).Inc()
	case errors.Is(err, strip.ErrMalformedMarker):
		r.runs.WithLabelValues(ResultMalformed).Inc()
	default:
		r.runs.WithLabelValues(ResultError).Inc()
	}
}

// Lines returns the counter for one outcome label.
func (r *Recorder) Lines(outcome string) prometheus.Counter {
	return r.lines.WithLabelValues(outcome)
}

// Runs returns the counter for one result label.
func (r *Recorder) Runs(result string) prometheus.Counter {
	return r.runs.WithLabelValues(result)
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func outcome(e strip.Event) string {
	switch {
	case e.Malformed:
		return OutcomeMalformed
	case e.Marker != strip.NoMarker:
		return OutcomeMarker
	case e.Emitted:
		return OutcomeEmitted
	default:
		return OutcomeSuppressed
	}
}
