// Package logging builds the zap loggers of the binaries.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jrick/logrotate/rotator"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultThresholdKB = 10 * 1024
	defaultMaxRolls    = 8
)

// Config selects the console format, the level and an optional rotated file.
type Config struct {
	Development bool
	Level       string
	// File receives JSON logs rotated at ThresholdKB, keeping MaxRolls old files.
	File        string
	ThresholdKB int64
	MaxRolls    int
}

// New returns the logger and a func that flushes and closes its sinks.
func New(cfg Config) (*zap.Logger, func(), error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("parse log level: %w", err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		return logger, func() { _ = logger.Sync() }, nil
	}

	r, err := newRotator(cfg)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(r),
		zcfg.Level,
	)
	logger = logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	}))
	return logger, func() {
		_ = logger.Sync()
		_ = r.Close()
	}, nil
}

func newRotator(cfg Config) (*rotator.Rotator, error) {
	if dir := filepath.Dir(cfg.File); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	threshold := cfg.ThresholdKB
	if threshold <= 0 {
		threshold = defaultThresholdKB
	}
	rolls := cfg.MaxRolls
	if rolls <= 0 {
		rolls = defaultMaxRolls
	}
	r, err := rotator.New(cfg.File, threshold, false, rolls)
	if err != nil {
		return nil, fmt.Errorf("create file rotator: %w", err)
	}
	return r, nil
}
