package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain/codechain"
	"github.com/goodnatureofminers/codechain-indexer/internal/ledger/account"
	"github.com/goodnatureofminers/codechain-indexer/internal/ledger/utxo"
	"github.com/goodnatureofminers/codechain-indexer/internal/metrics"
	"github.com/goodnatureofminers/codechain-indexer/internal/service/syncer"
	"github.com/goodnatureofminers/codechain-indexer/internal/settlement"
	"github.com/goodnatureofminers/codechain-indexer/internal/store"
	"github.com/goodnatureofminers/codechain-indexer/internal/store/memory"
	"github.com/goodnatureofminers/codechain-indexer/internal/store/postgres"
	"github.com/goodnatureofminers/codechain-indexer/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	StoreDriver    string        `long:"store" env:"INDEXER_STORE" description:"store backend" choice:"postgres" choice:"memory" default:"postgres"`
	PostgresDSN    string        `long:"postgres-dsn" env:"INDEXER_POSTGRES_DSN" description:"PostgreSQL DSN"`
	RPCURL         string        `long:"rpc-url" env:"INDEXER_RPC_URL" description:"CodeChain JSON-RPC URL" default:"http://127.0.0.1:8080"`
	RPCTimeout     time.Duration `long:"rpc-timeout" env:"INDEXER_RPC_TIMEOUT" description:"timeout of a single RPC call" default:"30s"`
	RPCRPS         int           `long:"rpc-rps" env:"INDEXER_RPC_RPS" description:"RPC requests per second, 0 for unlimited" default:"0"`
	NetworkID      string        `long:"network-id" env:"INDEXER_NETWORK_ID" description:"two-letter network id" required:"true"`
	Interval       time.Duration `long:"interval" env:"INDEXER_INTERVAL" description:"sync interval" default:"5s"`
	MaxBackoff     time.Duration `long:"max-backoff" env:"INDEXER_MAX_BACKOFF" description:"upper bound of the retry back-off" default:"1m"`
	Concurrency    int           `long:"concurrency" env:"INDEXER_CONCURRENCY" description:"concurrent chain calls per fan-out" default:"50"`
	MetricsAddr    string        `long:"metrics-addr" env:"INDEXER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	StatusAddr     string        `long:"status-addr" env:"INDEXER_STATUS_ADDR" description:"address for the status endpoint, empty to disable" default:":8081"`
	StatusTimeout  time.Duration `long:"status-timeout" env:"INDEXER_STATUS_TIMEOUT" description:"deadline of the sync run by a /status request" default:"1m"`
	StatusCacheTTL time.Duration `long:"status-cache-ttl" env:"INDEXER_STATUS_CACHE_TTL" description:"memoization window of /status" default:"1s"`
	DevLog         bool          `long:"dev-log" env:"INDEXER_DEV_LOG" description:"human readable development logging"`
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
		os.Exit(1)
	}

	logger, err := newLogger(cfg.DevLog)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("indexer failed", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("network", cfg.NetworkID))
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	st, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("failed to close store", zap.Error(err))
		}
	}()

	client, err := codechain.NewClient(codechain.Config{
		URL:       cfg.RPCURL,
		Timeout:   cfg.RPCTimeout,
		RPS:       cfg.RPCRPS,
		NetworkID: cfg.NetworkID,
	}, metrics.NewRPCClient(cfg.NetworkID), logger)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	oracle := codechain.NewStakeOracle(client, cfg.Concurrency)

	engine, err := syncer.NewEngine(
		st,
		client,
		utxo.NewLedger(metrics.NewUTXOLedger(), logger),
		account.NewLedger(client, cfg.Concurrency, metrics.NewAccountLedger(), logger),
		settlement.NewEngine(client, oracle, oracle, cfg.Concurrency, metrics.NewSettlement(), logger),
		metrics.NewSyncEngine(cfg.NetworkID),
		cfg.Concurrency,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init sync engine: %w", err)
	}

	svc, err := syncer.NewService(engine, cfg.Interval, cfg.MaxBackoff, wakeOnSignal(ctx, syscall.SIGUSR1), logger)
	if err != nil {
		return fmt.Errorf("init sync service: %w", err)
	}

	if cfg.StatusAddr != "" {
		status, err := transport.NewStatusHandler(engine, st, client, cfg.StatusCacheTTL, cfg.StatusTimeout, metrics.NewHTTPHandler(), logger)
		if err != nil {
			return fmt.Errorf("init status handler: %w", err)
		}
		defer func() {
			_ = status.Close()
		}()
		startStatusServer(ctx, cfg.StatusAddr, status, logger)
	}

	logger.Info("starting indexer",
		zap.String("store", cfg.StoreDriver),
		zap.String("rpc_url", cfg.RPCURL))
	return svc.Run(ctx)
}

func openStore(cfg config) (store.Store, func() error, error) {
	switch cfg.StoreDriver {
	case "memory":
		return memory.New(), func() error { return nil }, nil
	default:
		if cfg.PostgresDSN == "" {
			return nil, nil, errors.New("postgres dsn is required")
		}
		st, err := postgres.Open(cfg.PostgresDSN, metrics.NewPostgresStore())
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	}
}

// wakeOnSignal turns sig into sync triggers, letting operators force an immediate cycle.
func wakeOnSignal(ctx context.Context, sig os.Signal) <-chan struct{} {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, sig)
	trigger := make(chan struct{}, 1)
	go func() {
		defer signal.Stop(signals)
		for {
			select {
			case <-ctx.Done():
				return
			case <-signals:
				select {
				case trigger <- struct{}{}:
				default:
				}
			}
		}
	}()
	return trigger
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	serve(ctx, "metrics", addr, mux, logger)
}

func startStatusServer(ctx context.Context, addr string, status http.Handler, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/status", status)
	serve(ctx, "status", addr, cors.Default().Handler(mux), logger)
}

func serve(ctx context.Context, name, addr string, handler http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		logger.Info("starting "+name+" server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(name+" server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown "+name+" server", zap.Error(err))
		}
	}()
}
