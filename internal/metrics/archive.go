package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btcbridge",
		Subsystem: "archive",
		Name:      "statements_total",
		Help:      "ClickHouse archive statements by outcome.",
	}, []string{"network", "statement", "status"})
	archiveWriteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btcbridge",
		Subsystem: "archive",
		Name:      "statement_duration_seconds",
		Help:      "ClickHouse archive statement latency.",
		Buckets:   []float64{.005, .025, .1, .5, 1, 5, 15, 30},
	}, []string{"network", "statement"})
	archiveRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btcbridge",
		Subsystem: "archive",
		Name:      "rows_written_total",
		Help:      "Rows sent to the archive tables.",
	}, []string{"network", "statement"})
)

// Archive is bound to one network since a bridge deployment archives a
// single chain.
type Archive struct {
	network string
}

func NewArchive(network string) *Archive {
	if network == "" {
		network = "unknown"
	}
	return &Archive{network: network}
}

func (m *Archive) Observe(statement string, err error, started time.Time) {
	status := "ok"
	if err != nil {
		status = "failed"
	}
	archiveWritesTotal.WithLabelValues(m.network, statement, status).Inc()
	archiveWriteDuration.WithLabelValues(m.network, statement).Observe(time.Since(started).Seconds())
}

// AddRows counts rows of a batch the server accepted.
func (m *Archive) AddRows(statement string, rows int) {
	if rows <= 0 {
		return
	}
	archiveRowsTotal.WithLabelValues(m.network, statement).Add(float64(rows))
}
