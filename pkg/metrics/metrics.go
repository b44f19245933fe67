package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_cache_operations_total",
			Help: "Request cache operations",
		},
		[]string{"op"}, // hit|miss|expired|purged
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "request_cache_size",
			Help: "Number of entries currently in the request cache",
		},
	)
)

var (
	FetchOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_operations_total",
			Help: "Read operations by outcome",
		},
		[]string{"outcome"}, // cache|load|throttled|error
	)
	MutationOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_mutations_total",
			Help: "Status mutation requests by outcome",
		},
		[]string{"outcome"}, // applied|invalid|busy|failed
	)
	Invalidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_invalidations_total",
			Help: "Cache invalidations by resource family",
		},
		[]string{"family"},
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		CacheOps, CacheSize,
		FetchOps, MutationOps, Invalidations,
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
	)
}
