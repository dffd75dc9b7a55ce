package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/agent"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/logging"
	"github.com/goodnatureofminers/btcbridge-backend/internal/metrics"
	"github.com/goodnatureofminers/btcbridge-backend/internal/pkg/blocksignal"
	"github.com/goodnatureofminers/btcbridge-backend/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/btcbridge-backend/internal/pkg/metricsserver"
	"github.com/goodnatureofminers/btcbridge-backend/internal/transport"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Account       string        `long:"account" env:"VALIDATOR_ACCOUNT" description:"validator account the token belongs to" required:"true"`
	BridgeURL     string        `long:"bridge-url" env:"VALIDATOR_BRIDGE_URL" description:"bridge REST API" default:"http://127.0.0.1:8001"`
	Token         string        `long:"token" env:"VALIDATOR_TOKEN" description:"validator bearer token" required:"true"`
	BridgeTimeout time.Duration `long:"bridge-timeout" env:"VALIDATOR_BRIDGE_TIMEOUT" default:"30s"`
	Network       string        `long:"network" env:"VALIDATOR_NETWORK" description:"network label for metrics" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"VALIDATOR_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"VALIDATOR_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"VALIDATOR_RPC_PASSWORD" description:"Bitcoin RPC password"`
	ZMQAddr       string        `long:"zmq-addr" env:"VALIDATOR_ZMQ_ADDR" description:"bitcoind zmqpubhashblock endpoint"`
	MetricsAddr   string        `long:"metrics-addr" env:"VALIDATOR_METRICS_ADDR" description:"address for metrics server" default:":2114"`
	Window        uint64        `long:"window" env:"VALIDATOR_WINDOW" description:"heights above irreversible to endorse" default:"12"`
	PollInterval  time.Duration `long:"poll-interval" env:"VALIDATOR_POLL_INTERVAL" default:"10s"`
	ErrorSleep    time.Duration `long:"error-sleep" env:"VALIDATOR_ERROR_SLEEP" default:"5s"`

	LogDevelopment bool   `long:"log-development" env:"VALIDATOR_LOG_DEVELOPMENT"`
	LogLevel       string `long:"log-level" env:"VALIDATOR_LOG_LEVEL" default:"info"`
	LogFile        string `long:"log-file" env:"VALIDATOR_LOG_FILE"`
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
	logger = logger.With(zap.String("account", cfg.Account))

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("validator failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if _, err := metricsserver.Start(ctx, cfg.MetricsAddr, logger); err != nil {
		return err
	}

	node, err := rpcclient.Dial(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword, metrics.NewNode(cfg.Network, "validator"))
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer node.Shutdown()

	bridge, err := transport.NewClient(cfg.BridgeURL, cfg.Token, cfg.BridgeTimeout)
	if err != nil {
		return err
	}
	wake, err := blocksignal.Start(ctx, cfg.ZMQAddr, logger.Named("zmq"))
	if err != nil {
		return fmt.Errorf("start block signal: %w", err)
	}

	validator, err := agent.NewValidator(node, bridge, metrics.NewAgent("validator"), agent.ValidatorConfig{
		Account:      model.Account(cfg.Account),
		Window:       cfg.Window,
		PollInterval: cfg.PollInterval,
		ErrorSleep:   cfg.ErrorSleep,
		BlockSignal:  wake,
	}, logger)
	if err != nil {
		return err
	}
	return validator.Run(ctx)
}
