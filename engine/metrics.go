package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/pass"
)

// Metrics holds the engine's Prometheus collectors.
// A nil *Metrics records nothing.
type Metrics struct {
	passRuns       *prometheus.CounterVec
	passChanges    *prometheus.CounterVec
	dispatches     *prometheus.CounterVec
	executions     *prometheus.CounterVec
	executeSeconds prometheus.Histogram
}

// NewMetrics creates the engine collectors and registers them with reg.
// It returns an error if any collector cannot be registered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		passRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "effect_pass_runs_total",
			Help: "Total number of pass runs, by pass",
		}, []string{"pass"}),
		passChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "effect_pass_changes_total",
			Help: "Total number of pass runs that changed the pipeline, by pass",
		}, []string{"pass"}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "effect_dispatch_total",
			Help: "Total number of element dispatches, by kind and outcome",
		}, []string{"kind", "outcome"}),
		executions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "effect_executions_total",
			Help: "Total number of pipeline executions, by result",
		}, []string{"result"}),
		executeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "effect_execute_duration_seconds",
			Help:    "Pipeline execution latency",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}

	for _, c := range []prometheus.Collector{m.passRuns, m.passChanges, m.dispatches, m.executions, m.executeSeconds} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observePasses(reports []pass.Report) {
	if m == nil {
		return
	}
	for _, r := range reports {
		m.passRuns.WithLabelValues(r.Pass).Inc()
		if r.Changed {
			m.passChanges.WithLabelValues(r.Pass).Inc()
		}
	}
}

func (m *Metrics) observeDispatch(k effect.Kind, o Outcome) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(k.String(), o.String()).Inc()
}

func (m *Metrics) observeExecution(result string, start time.Time) {
	if m == nil {
		return
	}
	m.executions.WithLabelValues(result).Inc()
	m.executeSeconds.Observe(time.Since(start).Seconds())
}
