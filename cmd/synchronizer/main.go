package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/agent"
	"github.com/goodnatureofminers/btcbridge-backend/internal/logging"
	"github.com/goodnatureofminers/btcbridge-backend/internal/metrics"
	"github.com/goodnatureofminers/btcbridge-backend/internal/pkg/metricsserver"
	"github.com/goodnatureofminers/btcbridge-backend/internal/transport"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	BridgeURL      string        `long:"bridge-url" env:"SYNCHRONIZER_BRIDGE_URL" description:"bridge REST API" default:"http://127.0.0.1:8001"`
	Token          string        `long:"token" env:"SYNCHRONIZER_TOKEN" description:"synchronizer bearer token" required:"true"`
	BridgeTimeout  time.Duration `long:"bridge-timeout" env:"SYNCHRONIZER_BRIDGE_TIMEOUT" default:"30s"`
	MetricsAddr    string        `long:"metrics-addr" env:"SYNCHRONIZER_METRICS_ADDR" description:"address for metrics server" default:":2113"`
	Budget         uint64        `long:"budget" env:"SYNCHRONIZER_BUDGET" description:"work units per advance call" default:"4096"`
	CallsPerSecond int           `long:"calls-per-second" env:"SYNCHRONIZER_CALLS_PER_SECOND" default:"5"`
	IdleSleep      time.Duration `long:"idle-sleep" env:"SYNCHRONIZER_IDLE_SLEEP" default:"5s"`
	ErrorSleep     time.Duration `long:"error-sleep" env:"SYNCHRONIZER_ERROR_SLEEP" default:"5s"`
	ClaimRewards   bool          `long:"claim-rewards" env:"SYNCHRONIZER_CLAIM_REWARDS" description:"claim rewards after each migrated block"`

	LogDevelopment bool   `long:"log-development" env:"SYNCHRONIZER_LOG_DEVELOPMENT"`
	LogLevel       string `long:"log-level" env:"SYNCHRONIZER_LOG_LEVEL" default:"info"`
	LogFile        string `long:"log-file" env:"SYNCHRONIZER_LOG_FILE"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("can't parse arguments: " + err.Error())
	}

	logger, closeLogs, err := logging.New(logging.Config{
		Development: cfg.LogDevelopment,
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
	})
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer closeLogs()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("synchronizer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if _, err := metricsserver.Start(ctx, cfg.MetricsAddr, logger); err != nil {
		return err
	}

	bridge, err := transport.NewClient(cfg.BridgeURL, cfg.Token, cfg.BridgeTimeout)
	if err != nil {
		return err
	}
	synchronizer, err := agent.NewSynchronizer(bridge, metrics.NewAgent("synchronizer"), agent.SynchronizerConfig{
		Budget:         cfg.Budget,
		CallsPerSecond: cfg.CallsPerSecond,
		IdleSleep:      cfg.IdleSleep,
		ErrorSleep:     cfg.ErrorSleep,
		ClaimRewards:   cfg.ClaimRewards,
	}, logger)
	if err != nil {
		return err
	}
	return synchronizer.Run(ctx)
}
