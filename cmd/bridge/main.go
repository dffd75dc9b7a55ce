package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/btcbridge-backend/internal/archive/clickhouse"
	"github.com/goodnatureofminers/btcbridge-backend/internal/archive/exporter"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/ledger"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/service"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/store"
	"github.com/goodnatureofminers/btcbridge-backend/internal/logging"
	"github.com/goodnatureofminers/btcbridge-backend/internal/metrics"
	"github.com/goodnatureofminers/btcbridge-backend/internal/transport"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const healthInterval = 10 * time.Second

var config struct {
	Addr       string   `long:"addr" env:"BRIDGE_ADDR" description:"gRPC health addr" default:":8000"`
	RestAddr   string   `long:"rest-addr" env:"BRIDGE_REST_ADDR" description:"REST and metrics addr" default:":8001"`
	StorePath  string   `long:"store" env:"BRIDGE_STORE" description:"bbolt state file" default:"data/bridge.db"`
	Tokens     []string `long:"token" env:"BRIDGE_TOKENS" env-delim:"," description:"account:token bearer credentials"`
	AdminToken string   `long:"admin-token" env:"BRIDGE_ADMIN_TOKEN" description:"admin bearer token"`

	Network                   string        `long:"network" env:"BRIDGE_NETWORK" description:"bitcoin network" default:"mainnet"`
	StartHeight               uint64        `long:"start-height" env:"BRIDGE_START_HEIGHT" description:"checkpoint height" default:"839999"`
	ConfirmationDepth         uint64        `long:"confirmation-depth" env:"BRIDGE_CONFIRMATION_DEPTH" default:"6"`
	MerkleLayers              uint8         `long:"merkle-layers" env:"BRIDGE_MERKLE_LAYERS" default:"11"`
	ParseTimeout              time.Duration `long:"parse-timeout" env:"BRIDGE_PARSE_TIMEOUT" default:"10m"`
	ValidatorsPerDistribution uint32        `long:"validators-per-distribution" env:"BRIDGE_VALIDATORS_PER_DISTRIBUTION" default:"100"`
	RetainDataBlocks          uint64        `long:"retain-data-blocks" env:"BRIDGE_RETAIN_DATA_BLOCKS" default:"100"`
	SpentRetentionBlocks      uint64        `long:"spent-retention-blocks" env:"BRIDGE_SPENT_RETENTION_BLOCKS" default:"100"`
	MinerPriorityBlocks       uint64        `long:"miner-priority-blocks" env:"BRIDGE_MINER_PRIORITY_BLOCKS" default:"10"`
	HostBlockInterval         time.Duration `long:"host-block-interval" env:"BRIDGE_HOST_BLOCK_INTERVAL" default:"500ms"`
	EndorseFutureWindow       uint64        `long:"endorse-future-window" env:"BRIDGE_ENDORSE_FUTURE_WINDOW" default:"100"`
	MinEndorseInterval        time.Duration `long:"min-endorse-interval" env:"BRIDGE_MIN_ENDORSE_INTERVAL" default:"0s"`
	XSATActivationHeight      uint64        `long:"xsat-activation-height" env:"BRIDGE_XSAT_ACTIVATION_HEIGHT" description:"0 disables"`
	EndorsementDisabled       bool          `long:"endorsement-disabled" env:"BRIDGE_ENDORSEMENT_DISABLED"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"BRIDGE_CLICKHOUSE_DSN" description:"archive DSN, export is off when empty"`
	ExportBatch   int    `long:"export-batch" env:"BRIDGE_EXPORT_BATCH" default:"200"`

	LogDevelopment bool   `long:"log-development" env:"BRIDGE_LOG_DEVELOPMENT"`
	LogLevel       string `long:"log-level" env:"BRIDGE_LOG_LEVEL" default:"info"`
	LogFile        string `long:"log-file" env:"BRIDGE_LOG_FILE" description:"rotated JSON log file"`
}

func chainConfig() model.Config {
	cfg := model.DefaultConfig()
	cfg.Network = model.Network(config.Network)
	cfg.StartHeight = config.StartHeight
	cfg.ConfirmationDepth = config.ConfirmationDepth
	cfg.MerkleLayers = config.MerkleLayers
	cfg.ParseTimeout = config.ParseTimeout
	cfg.ValidatorsPerDistribution = config.ValidatorsPerDistribution
	cfg.RetainDataBlocks = config.RetainDataBlocks
	cfg.SpentRetentionBlocks = config.SpentRetentionBlocks
	cfg.MinerPriorityBlocks = config.MinerPriorityBlocks
	cfg.HostBlockInterval = config.HostBlockInterval
	cfg.EndorseFutureWindow = config.EndorseFutureWindow
	cfg.MinEndorseInterval = config.MinEndorseInterval
	cfg.XSATActivationHeight = config.XSATActivationHeight
	cfg.EndorsementDisabled = config.EndorsementDisabled
	return cfg
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("can't parse arguments: " + err.Error())
	}
	logger, closeLogs, err := logging.New(logging.Config{
		Development: config.LogDevelopment,
		Level:       config.LogLevel,
		File:        config.LogFile,
	})
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer closeLogs()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	cfg := chainConfig()
	logger = logger.With(zap.String("network", string(cfg.Network)))

	db, err := store.Open(config.StorePath)
	if err != nil {
		logger.Fatal("Open store", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Close store", zap.Error(err))
		}
	}()

	engine, err := service.New(cfg, db, ledger.DefaultPrices(), metrics.NewEngine(cfg.Network), nil, logger.Named("engine"))
	if err != nil {
		logger.Fatal("Create engine", zap.Error(err))
	}

	tokens, err := transport.ParseTokens(config.Tokens)
	if err != nil {
		logger.Fatal("Parse tokens", zap.Error(err))
	}
	handler, err := transport.NewHandler(engine, tokens, config.AdminToken, logger.Named("transport"))
	if err != nil {
		logger.Fatal("Create handler", zap.Error(err))
	}

	if config.ClickhouseDSN != "" {
		go runExporter(ctx, engine, cfg, logger.Named("exporter"))
	}

	healthServer := health.NewServer()
	go watchHealth(ctx, engine, healthServer, logger)

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	gw := gwruntime.NewServeMux()
	if err := handler.Register(gw); err != nil {
		logger.Fatal("Register bridge handler", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

func runExporter(ctx context.Context, engine *service.Engine, cfg model.Config, logger *zap.Logger) {
	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, cfg.Network, metrics.NewArchive(string(cfg.Network)))
	if err != nil {
		logger.Error("Open archive", zap.Error(err))
		return
	}
	defer func() {
		_ = repo.Close()
	}()

	exp, err := exporter.New(engine, repo, metrics.NewExporter(string(cfg.Network)), exporter.Config{
		StartHeight: cfg.StartHeight,
		BatchSize:   config.ExportBatch,
	}, logger)
	if err != nil {
		logger.Error("Create exporter", zap.Error(err))
		return
	}
	if err := exp.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Exporter stopped", zap.Error(err))
	}
}

// watchHealth serves while the state file answers reads.
func watchHealth(ctx context.Context, engine *service.Engine, hs *health.Server, logger *zap.Logger) {
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()
	for {
		status := healthpb.HealthCheckResponse_SERVING
		if _, err := engine.ChainState(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("Health probe failed", zap.Error(err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		hs.SetServingStatus("", status)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
