package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exporterBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btcbridge",
		Subsystem: "archive_exporter",
		Name:      "batch_total",
		Help:      "Count of archive export batches.",
	}, []string{"network", "status"})

	exporterBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btcbridge",
		Subsystem: "archive_exporter",
		Name:      "batch_duration_seconds",
		Help:      "Duration of exporting one batch of irreversible blocks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	exporterBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btcbridge",
		Subsystem: "archive_exporter",
		Name:      "batch_size",
		Help:      "Number of blocks exported per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network"})

	exporterHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "btcbridge",
		Subsystem: "archive_exporter",
		Name:      "height",
		Help:      "Highest irreversible height present in the archive.",
	}, []string{"network"})
)

// Exporter tracks metrics for the archive exporter loop.
type Exporter struct {
	network string
}

// NewExporter constructs an Exporter collector.
func NewExporter(network string) *Exporter {
	if network == "" {
		network = "unknown"
	}
	return &Exporter{network: network}
}

// ObserveBatch records an export batch.
func (m Exporter) ObserveBatch(err error, blocks int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	exporterBatchTotal.WithLabelValues(m.network, status).Inc()
	exporterBatchDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	if err == nil {
		exporterBatchSize.WithLabelValues(m.network).Observe(float64(blocks))
	}
}

// SetHeight publishes the archived height.
func (m Exporter) SetHeight(height uint64) {
	exporterHeight.WithLabelValues(m.network).Set(float64(height))
}
