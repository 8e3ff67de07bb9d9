// Package metrics exposes Drashta's operational counters as Prometheus
// collectors, in the package-level-vars style of the event broker the
// domain stack was grounded on.
package metrics

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubscribersGauge reports live subscriber count per topic.
	SubscribersGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "drashta_hub_subscribers",
			Help: "Current number of live SSE subscribers by topic",
		},
		[]string{"topic"},
	)

	// SubscriberLagTotal counts oldest-message evictions due to a lagging
	// subscriber, by topic.
	SubscriberLagTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drashta_hub_subscriber_lag_total",
			Help: "Total number of events dropped for lagging subscribers by topic",
		},
		[]string{"topic"},
	)

	// EventsPublishedTotal counts events delivered into the Hub, by
	// service and event_type.
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drashta_events_published_total",
			Help: "Total number of classified events published to the hub",
		},
		[]string{"service", "event_type"},
	)

	// JournalReaderErrorsTotal counts transient journal advance failures
	// retried by the Reader.
	JournalReaderErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drashta_journal_reader_errors_total",
			Help: "Total number of transient journal read errors encountered",
		},
	)

	// HistoricalQueryDuration tracks wall-clock time of /drain, /older,
	// and /previous walks, by route.
	HistoricalQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drashta_query_duration_seconds",
			Help:    "Historical query walk duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// HubObserver adapts the package-level SubscribersGauge/SubscriberLagTotal
// collectors to the hub.LagObserver interface, keeping internal/hub free of
// a direct Prometheus dependency.
type HubObserver struct{}

// ObserveLag increments SubscriberLagTotal for topic. The subscriber ID is
// accepted to satisfy hub.LagObserver but is not itself a label: per-series
// cardinality keyed by subscriber would grow unbounded over the server's
// lifetime.
func (HubObserver) ObserveLag(topic string, _ uuid.UUID) {
	SubscriberLagTotal.WithLabelValues(topic).Inc()
}

// SetSubscriberCount sets SubscribersGauge for topic to the Hub's current
// subscriber count, called after every register/unregister.
func (HubObserver) SetSubscriberCount(topic string, count int) {
	SubscribersGauge.WithLabelValues(topic).Set(float64(count))
}
