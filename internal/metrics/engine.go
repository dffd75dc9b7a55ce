// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	engineCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btcbridge",
		Subsystem: "engine",
		Name:      "commands_total",
		Help:      "Count of bridge commands by outcome class.",
	}, []string{"command", "network", "status"})

	engineCommandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btcbridge",
		Subsystem: "engine",
		Name:      "command_duration_seconds",
		Help:      "Duration of bridge commands including the state commit.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"command", "network", "status"})

	verifyOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btcbridge",
		Subsystem: "verifier",
		Name:      "outcomes_total",
		Help:      "Count of verify calls by resulting buffer status and failure reason.",
	}, []string{"network", "status", "reason"})

	chainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "btcbridge",
		Subsystem: "chain",
		Name:      "height",
		Help:      "Irreversible and head heights of the chain state.",
	}, []string{"network", "kind"})

	chainUTXOs = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "btcbridge",
		Subsystem: "chain",
		Name:      "utxos",
		Help:      "Size of the canonical UTXO set.",
	}, []string{"network"})

	chainPhase = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "btcbridge",
		Subsystem: "chain",
		Name:      "phase",
		Help:      "Current chain-state phase, one series set to 1.",
	}, []string{"network", "phase"})
)

var phases = []model.Phase{
	model.PhaseWaiting, model.PhaseParsing, model.PhaseMigrating,
	model.PhasePruning, model.PhaseDistributingRewards,
}

// Engine tracks metrics of the bridge command surface.
type Engine struct {
	network string
}

// NewEngine constructs an Engine collector for network.
func NewEngine(network model.Network) *Engine {
	n := string(network)
	if n == "" {
		n = "unknown"
	}
	return &Engine{network: n}
}

// Observe records a command outcome and duration.
func (m Engine) Observe(command string, err error, started time.Time) {
	status := model.ErrorClass(err)
	engineCommandsTotal.WithLabelValues(command, m.network, status).Inc()
	engineCommandDuration.WithLabelValues(command, m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveVerify records the buffer status reached by a verify call.
func (m Engine) ObserveVerify(res model.VerifyResult) {
	verifyOutcomesTotal.WithLabelValues(m.network, res.Status.String(), string(res.Reason)).Inc()
}

// SetChainState publishes the committed chain state.
func (m Engine) SetChainState(st *model.ChainState) {
	if st == nil {
		return
	}
	chainHeight.WithLabelValues(m.network, "irreversible").Set(float64(st.IrreversibleHeight))
	chainHeight.WithLabelValues(m.network, "head").Set(float64(st.HeadHeight))
	chainUTXOs.WithLabelValues(m.network).Set(float64(st.UTXOCount))
	for _, p := range phases {
		v := 0.0
		if p == st.Phase {
			v = 1
		}
		chainPhase.WithLabelValues(m.network, p.String()).Set(v)
	}
}
