package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collection metrics.
var (
	SlotsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_generated_total",
			Help:      "Coin slots generated by populate, by series",
		},
		[]string{"series"},
	)

	CollectionOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collection_operations_total",
			Help:      "Collection store operations by kind and outcome",
		},
		[]string{"op", "status"},
	)

	JobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_total",
			Help:      "Background jobs by kind and final state",
		},
		[]string{"kind", "state"},
	)

	JobQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "job_queue_depth",
			Help:      "Jobs waiting for the dispatcher",
		},
	)
)

func init() {
	prometheus.MustRegister(SlotsGenerated, CollectionOps, JobsTotal, JobQueueDepth)
}

// Outcome labels an operation result.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
