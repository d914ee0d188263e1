package pathguide

import "github.com/prometheus/client_golang/prometheus"

// guideMetrics wraps the two observability gauges spec.md §6 calls out:
// total node count and current max-fully-explored level. It is nil-safe —
// a guide constructed without WithRegistry never allocates one.
type guideMetrics struct {
	nodeCount prometheus.Gauge
	maxLevel  prometheus.Gauge
}

func newGuideMetrics(reg *prometheus.Registry, guideKind string) *guideMetrics {
	if reg == nil {
		return nil
	}
	m := &guideMetrics{
		nodeCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "pathguide",
			Name:        "node_count",
			Help:        "Node count reported by this guide's NodeCount.",
			ConstLabels: prometheus.Labels{"guide": guideKind},
		}),
		maxLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "pathguide",
			Name:        "max_fully_explored_level",
			Help:        "Level of the deepest node the BFS frontier has popped.",
			ConstLabels: prometheus.Labels{"guide": guideKind},
		}),
	}
	reg.MustRegister(m.nodeCount, m.maxLevel)
	return m
}

func (m *guideMetrics) setNodeCount(n int) {
	if m == nil {
		return
	}
	m.nodeCount.Set(float64(n))
}

func (m *guideMetrics) setMaxLevel(l int) {
	if m == nil {
		return
	}
	m.maxLevel.Set(float64(l))
}
