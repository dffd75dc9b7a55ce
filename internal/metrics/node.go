package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btcbridge",
		Subsystem: "node",
		Name:      "calls_total",
		Help:      "bitcoind RPC calls made by an agent, by outcome class.",
	}, []string{"role", "network", "call", "class"})
	nodeCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btcbridge",
		Subsystem: "node",
		Name:      "call_duration_seconds",
		Help:      "Latency of bitcoind RPC calls.",
		Buckets:   []float64{.002, .01, .05, .1, .25, .5, 1, 2, 5, 10},
	}, []string{"role", "network", "call"})
	nodeTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "btcbridge",
		Subsystem: "node",
		Name:      "tip_height",
		Help:      "Last block count reported by the agent's bitcoind.",
	}, []string{"role", "network"})
)

// Node records the bitcoind traffic of one agent process.
type Node struct {
	role    string
	network string
}

func NewNode(network, role string) *Node {
	if network == "" {
		network = "unknown"
	}
	if role == "" {
		role = "unknown"
	}
	return &Node{role: role, network: network}
}

// Observe counts a call and, unless it was rejected by the node itself,
// its latency.
func (m *Node) Observe(call string, err error, started time.Time) {
	class := nodeErrorClass(err)
	nodeCallsTotal.WithLabelValues(m.role, m.network, call, class).Inc()
	if class == "success" || class == "timeout" {
		nodeCallDuration.WithLabelValues(m.role, m.network, call).Observe(time.Since(started).Seconds())
	}
}

func (m *Node) SetTip(height int64) {
	nodeTipHeight.WithLabelValues(m.role, m.network).Set(float64(height))
}

// nodeErrorClass separates node-side rejections (unknown hash, height out
// of range) from transport failures.
func nodeErrorClass(err error) string {
	if err == nil {
		return "success"
	}
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return "rejected"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return "timeout"
		}
		return "unreachable"
	}
	return "error"
}
