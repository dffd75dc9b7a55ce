package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/agent"
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
	BridgeURL     string        `long:"bridge-url" env:"RELAYER_BRIDGE_URL" description:"bridge REST API" default:"http://127.0.0.1:8001"`
	Token         string        `long:"token" env:"RELAYER_TOKEN" description:"relayer bearer token" required:"true"`
	BridgeTimeout time.Duration `long:"bridge-timeout" env:"RELAYER_BRIDGE_TIMEOUT" default:"30s"`
	Network       string        `long:"network" env:"RELAYER_NETWORK" description:"network label for metrics" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"RELAYER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"RELAYER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"RELAYER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	ZMQAddr       string        `long:"zmq-addr" env:"RELAYER_ZMQ_ADDR" description:"bitcoind zmqpubhashblock endpoint"`
	MetricsAddr   string        `long:"metrics-addr" env:"RELAYER_METRICS_ADDR" description:"address for metrics server" default:":2112"`

	Lookahead    uint64        `long:"lookahead" env:"RELAYER_LOOKAHEAD" default:"12"`
	ChunkSize    int           `long:"chunk-size" env:"RELAYER_CHUNK_SIZE" default:"524288"`
	Workers      int           `long:"workers" env:"RELAYER_WORKERS" default:"4"`
	VerifyBudget uint64        `long:"verify-budget" env:"RELAYER_VERIFY_BUDGET" default:"2048"`
	PollInterval time.Duration `long:"poll-interval" env:"RELAYER_POLL_INTERVAL" default:"10s"`
	ErrorSleep   time.Duration `long:"error-sleep" env:"RELAYER_ERROR_SLEEP" default:"5s"`

	Bootstrap       bool   `long:"bootstrap" description:"submit the checkpoint block and exit"`
	AdminToken      string `long:"admin-token" env:"RELAYER_ADMIN_TOKEN" description:"admin bearer token, used with --bootstrap"`
	CheckpointWork  string `long:"checkpoint-work" env:"RELAYER_CHECKPOINT_WORK" description:"hex chain work up to the checkpoint"`
	CheckpointBlock uint64 `long:"checkpoint-height" env:"RELAYER_CHECKPOINT_HEIGHT" default:"839999"`

	LogDevelopment bool   `long:"log-development" env:"RELAYER_LOG_DEVELOPMENT"`
	LogLevel       string `long:"log-level" env:"RELAYER_LOG_LEVEL" default:"info"`
	LogFile        string `long:"log-file" env:"RELAYER_LOG_FILE"`
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
		logger.Fatal("relayer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	node, err := rpcclient.Dial(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword, metrics.NewNode(cfg.Network, "relayer"))
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer node.Shutdown()

	if cfg.Bootstrap {
		return bootstrap(ctx, cfg, node, logger)
	}

	if _, err := metricsserver.Start(ctx, cfg.MetricsAddr, logger); err != nil {
		return err
	}

	bridge, err := transport.NewClient(cfg.BridgeURL, cfg.Token, cfg.BridgeTimeout)
	if err != nil {
		return err
	}
	wake, err := blocksignal.Start(ctx, cfg.ZMQAddr, logger.Named("zmq"))
	if err != nil {
		return fmt.Errorf("start block signal: %w", err)
	}

	relayer, err := agent.NewRelayer(node, bridge, metrics.NewAgent("relayer"), agent.RelayerConfig{
		Lookahead:    cfg.Lookahead,
		ChunkSize:    cfg.ChunkSize,
		Workers:      cfg.Workers,
		VerifyBudget: cfg.VerifyBudget,
		PollInterval: cfg.PollInterval,
		ErrorSleep:   cfg.ErrorSleep,
		BlockSignal:  wake,
	}, logger)
	if err != nil {
		return err
	}
	return relayer.Run(ctx)
}

func bootstrap(ctx context.Context, cfg config, node agent.Node, logger *zap.Logger) error {
	work, ok := new(big.Int).SetString(strings.TrimPrefix(cfg.CheckpointWork, "0x"), 16)
	if !ok {
		return fmt.Errorf("checkpoint work %q is not hex", cfg.CheckpointWork)
	}
	admin, err := transport.NewClient(cfg.BridgeURL, cfg.AdminToken, cfg.BridgeTimeout)
	if err != nil {
		return err
	}
	state, err := agent.Bootstrap(ctx, node, admin, cfg.CheckpointBlock, work)
	if err != nil {
		return err
	}
	logger.Info("bridge bootstrapped",
		zap.Uint64("irreversible_height", state.IrreversibleHeight),
		zap.Stringer("irreversible_hash", state.IrreversibleHash),
	)
	return nil
}
