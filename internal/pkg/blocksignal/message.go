// Package blocksignal turns bitcoind ZMQ block notifications into a wake-up
// channel for the agents. Without the zmq build tag only polling is available.
package blocksignal

const hashBlockTopic = "hashblock"

// valid reports whether parts is a hashblock notification: topic, a 32-byte
// hash and, from bitcoind, a sequence number.
func valid(parts [][]byte) bool {
	return len(parts) >= 2 && string(parts[0]) == hashBlockTopic && len(parts[1]) == 32
}
