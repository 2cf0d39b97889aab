package marshmallow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	allocations     *prometheus.CounterVec
	ineligible      *prometheus.CounterVec
	conflicts       prometheus.Counter
	publishFailures prometheus.Counter
	weight          prometheus.Histogram
}

// newMetrics registers the allocation metrics; a nil registerer gets a private registry
func newMetrics(promRegistry prometheus.Registerer) *metrics {
	if promRegistry == nil {
		promRegistry = prometheus.NewRegistry()
	}
	promautoFactory := promauto.With(promRegistry)
	m := &metrics{}
	m.allocations = promautoFactory.NewCounterVec(prometheus.CounterOpts{
		Name: "lookaway_marshmallow_allocations_total",
		Help: "committed allocations by entity type",
	}, []string{"entity_type"})
	m.ineligible = promautoFactory.NewCounterVec(prometheus.CounterOpts{
		Name: "lookaway_marshmallow_ineligible_total",
		Help: "allocation attempts refused by reason",
	}, []string{"reason"})
	m.conflicts = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "lookaway_marshmallow_conflicts_total",
		Help: "allocation transactions aborted by a concurrent writer",
	})
	m.publishFailures = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "lookaway_marshmallow_publish_failures_total",
		Help: "allocation events that could not be published",
	})
	m.weight = promautoFactory.NewHistogram(prometheus.HistogramOpts{
		Name:    "lookaway_marshmallow_allocation_weight",
		Help:    "adjusted weight carried by committed allocations",
		Buckets: []float64{0.05, 1, 5, 10, 50, 100, 150, 300},
	})
	return m
}
