//go:build !zmq

package blocksignal

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var ErrUnsupported = errors.New("block signal requires a build with the zmq tag")

func Start(_ context.Context, addr string, _ *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}
	return nil, ErrUnsupported
}
