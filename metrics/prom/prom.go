// Package prom exports pqueue pool and queue signals as Prometheus metrics.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/IvanBrykalov/linkedpq/policy"
	"github.com/IvanBrykalov/linkedpq/pqueue"
)

// Adapter implements pqueue.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	acquires *prometheus.CounterVec
	releases *prometheus.CounterVec
	pooled   prometheus.Gauge
	resolved *prometheus.CounterVec
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		acquires: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "node_acquires_total",
				Help:        "Nodes handed out by the pool, by source (reused|fresh)",
				ConstLabels: constLabels,
			},
			[]string{"source"},
		),
		releases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "node_releases_total",
				Help:        "Nodes returned to the pool, by outcome (retained|discarded)",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
		pooled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "pooled_nodes",
			Help:        "Nodes currently parked in the pool's free chain",
			ConstLabels: constLabels,
		}),
		resolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "enqueues_total",
				Help:        "Enqueue outcomes by action (insert|ignore|allow_duplicate|override)",
				ConstLabels: constLabels,
			},
			[]string{"action"},
		),
	}
	reg.MustRegister(a.acquires, a.releases, a.pooled, a.resolved)
	return a
}

// Acquire counts a node handed out by the pool.
func (a *Adapter) Acquire(reused bool) {
	src := "fresh"
	if reused {
		src = "reused"
	}
	a.acquires.WithLabelValues(src).Inc()
}

// Release counts a node returned to the pool.
func (a *Adapter) Release(retained bool) {
	out := "discarded"
	if retained {
		out = "retained"
	}
	a.releases.WithLabelValues(out).Inc()
}

// Pooled updates the free chain length gauge.
func (a *Adapter) Pooled(n int) { a.pooled.Set(float64(n)) }

// Resolve counts an enqueue outcome.
func (a *Adapter) Resolve(act policy.Action) {
	a.resolved.WithLabelValues(act.String()).Inc()
}

// Compile-time check: ensure Adapter implements pqueue.Metrics.
var _ pqueue.Metrics = (*Adapter)(nil)
