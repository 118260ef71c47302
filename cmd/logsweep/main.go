package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"logsweep/internal/config"
	"logsweep/internal/exitcodes"
	"logsweep/internal/history"
	"logsweep/internal/logging"
	"logsweep/internal/metrics"
	"logsweep/internal/rootdir"
	"logsweep/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to optional configuration file")
	rootFlag := flag.String("root", "", "Workspace root to clean (default: parent of the executable's directory)")
	historyPath := flag.String("history", "", "Path to SQLite removal history database")
	interval := flag.Int("interval", 0, "Run every N minutes instead of once (watch mode)")
	flag.Parse()

	// Initialize logger
	logger := logging.New()

	// Load configuration, defaults apply when no file is given
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Printf("ERROR: Failed to load config: %v", err)
			os.Exit(exitcodes.InvalidConfig)
		}
	}

	// Flags override config
	if *interval > 0 {
		cfg.IntervalMinutes = *interval
		if cfg.Prometheus.Port == 0 {
			cfg.Prometheus.Port = 9091
		}
	}
	if *historyPath != "" {
		cfg.HistoryDB = *historyPath
	}
	rootOverride := *rootFlag
	if rootOverride == "" {
		rootOverride = cfg.Root
	}

	// Resolve the workspace root once per run
	root, err := rootdir.Resolve(rootOverride)
	if err != nil {
		logger.Printf("ERROR: Failed to resolve workspace root: %v", err)
		os.Exit(exitcodes.PathResolution)
	}
	logger.Printf("workspace root: %s", root)

	// Initialize metrics (Prometheus)
	metrics.Init()

	// Open removal history database when configured
	var db *history.DB
	if cfg.HistoryDB != "" {
		logger.Printf("Opening removal history database: %s", cfg.HistoryDB)
		db, err = history.New(cfg.HistoryDB)
		if err != nil {
			logger.Printf("ERROR: Failed to open database: %v", err)
			os.Exit(exitcodes.RuntimeError)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Printf("ERROR: Failed to close database: %v", err)
			}
		}()
	}

	if cfg.IntervalMinutes <= 0 {
		// One-shot sweep
		if err := scheduler.RunOnce(context.Background(), cfg, root, logger, db); err != nil {
			logger.Printf("ERROR: Sweep failed: %v", err)
			os.Exit(exitcodes.RuntimeError)
		}
		return
	}

	// Watch mode: serve metrics and sweep on the configured interval
	if cfg.Prometheus.Port > 0 {
		addr := cfg.PrometheusAddress()
		logger.Printf("Starting Prometheus metrics on %s", addr)
		metrics.StartServer(addr, logger)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Printf("Received signal %v, shutting down gracefully...", sig)
		cancel()
	}()

	logger.Printf("watch mode: sweeping every %d minute(s)", cfg.IntervalMinutes)
	if err := scheduler.Run(ctx, cfg, root, logger, db); err != nil && err != context.Canceled {
		logger.Printf("ERROR: Scheduler failed: %v", err)
		os.Exit(exitcodes.RuntimeError)
	}

	logger.Println("logsweep stopped")
}
