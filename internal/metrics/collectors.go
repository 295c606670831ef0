package metrics

import "github.com/prometheus/client_golang/prometheus"

// Shard and gateway Prometheus metrics.
var (
	ShardSearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "geocoder",
			Name:      "shard_search_duration_seconds",
			Help:      "Shard search duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"shard"},
	)

	ShardRecordsLoaded = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "geocoder",
			Name:      "shard_records_loaded",
			Help:      "Number of records accepted at shard initialization",
		},
		[]string{"shard"},
	)

	// IndexInconsistencyTotal counts ids found in the radix index with no
	// forward-store entry. The two structures are built in lockstep, so any
	// increment here indicates a defect.
	IndexInconsistencyTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geocoder",
			Name:      "shard_index_inconsistency_total",
			Help:      "Ids present in the radix index but missing from the forward store",
		},
		[]string{"shard"},
	)

	GatewayShardOutcomeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geocoder",
			Name:      "gateway_shard_outcome_total",
			Help:      "Per-shard query outcomes",
		},
		[]string{"shard", "outcome"}, // "ok" / "timeout" / "error"
	)

	GatewayScatterDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "geocoder",
			Name:      "gateway_scatter_duration_seconds",
			Help:      "Wall-clock duration of one full scatter/gather",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
	)
)

// RegisterShardMetrics registers the shard-side collectors.
func RegisterShardMetrics() {
	prometheus.MustRegister(ShardSearchDuration)
	prometheus.MustRegister(ShardRecordsLoaded)
	prometheus.MustRegister(IndexInconsistencyTotal)
}

// RegisterGatewayMetrics registers the gateway-side collectors.
func RegisterGatewayMetrics() {
	prometheus.MustRegister(GatewayShardOutcomeTotal)
	prometheus.MustRegister(GatewayScatterDuration)
}
