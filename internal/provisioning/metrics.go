package provisioning

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/redstack/internal/resource"
)

// Compose results used as the "result" label.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics records composition metrics. A nil *Metrics records nothing.
type Metrics struct {
	composeTotal    *prometheus.CounterVec
	composeDuration prometheus.Histogram
	phaseDuration   *prometheus.HistogramVec
	planNodes       *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		composeTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "redstack",
				Name:      "compose_total",
				Help:      "Total number of composition passes by result",
			},
			[]string{"result"},
		),
		composeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "redstack",
				Name:      "compose_duration_seconds",
				Help:      "Duration of a composition pass in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs to ~1.6s
			},
		),
		phaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "redstack",
				Name:      "phase_duration_seconds",
				Help:      "Duration of a composition phase in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"phase"},
		),
		planNodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "redstack",
				Name:      "plan_nodes",
				Help:      "Number of nodes in the last composed plan by kind and provenance",
			},
			[]string{"kind", "provenance"},
		),
	}

	reg.MustRegister(m.composeTotal, m.composeDuration, m.phaseDuration, m.planNodes)
	return m
}

// ObserveCompose records the outcome of one composition pass.
func (m *Metrics) ObserveCompose(err error, d time.Duration) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.composeTotal.WithLabelValues(result).Inc()
	m.composeDuration.Observe(d.Seconds())
}

// ObservePhase records the duration of one phase.
func (m *Metrics) ObservePhase(phase string, d time.Duration) {
	if m == nil {
		return
	}
	m.phaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

// RecordPlan replaces the node gauges with the counts of nodes.
func (m *Metrics) RecordPlan(nodes []*resource.Node) {
	if m == nil {
		return
	}
	m.planNodes.Reset()
	for _, n := range nodes {
		m.planNodes.WithLabelValues(string(n.Kind), string(n.Provenance)).Inc()
	}
}
