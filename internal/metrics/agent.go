package metrics

import (
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	agentStepTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btcbridge",
		Subsystem: "agent",
		Name:      "steps_total",
		Help:      "Count of agent loop steps.",
	}, []string{"role", "step", "status"})

	agentStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btcbridge",
		Subsystem: "agent",
		Name:      "step_duration_seconds",
		Help:      "Duration of agent loop steps.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"role", "step", "status"})
)

// Agent tracks metrics of a relayer, synchronizer or validator loop.
type Agent struct {
	role string
}

// NewAgent constructs an Agent collector for role.
func NewAgent(role string) *Agent {
	if role == "" {
		role = "unknown"
	}
	return &Agent{role: role}
}

// ObserveStep records one step of the loop.
func (m Agent) ObserveStep(step string, err error, started time.Time) {
	status := model.ErrorClass(err)
	agentStepTotal.WithLabelValues(m.role, step, status).Inc()
	agentStepDuration.WithLabelValues(m.role, step, status).Observe(time.Since(started).Seconds())
}
