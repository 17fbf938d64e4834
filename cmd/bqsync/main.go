package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/storhub/bqsync/pkg/config"
	"github.com/storhub/bqsync/pkg/logger"
	"github.com/storhub/bqsync/pkg/metrics"
	"github.com/storhub/bqsync/pkg/scheduler"
	"github.com/storhub/bqsync/pkg/store"
	"github.com/storhub/bqsync/pkg/syncer"
	"github.com/storhub/bqsync/pkg/warehouse"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	var configFile string

	root := &cobra.Command{
		Use:   "bqsync",
		Short: "bqsync - warehouse to database sync engine",
		Long: `bqsync periodically pulls denormalized entity views from the analytics
warehouse, normalizes the rows into canonical records, and loads them
idempotently into the transactional database.`,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML configuration file (optional)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bqsync v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List sync entities and their cadences",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.New()
			if configFile != "" {
				if err := config.Load(configFile, cfg); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
			}
			config.FromEnv(cfg)

			jobs := syncer.Jobs(nil, cfg.Sync.Schedules)
			sort.Slice(jobs, func(i, j int) bool { return jobs[i].Entity < jobs[j].Entity })

			fmt.Println("Sync entities:")
			for _, job := range jobs {
				fmt.Printf("  %-22s %s\n", job.Entity, job.Spec)
			}
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Start the sync scheduler",
		Long: `Start all entity sync jobs on their configured cadences and block
until interrupted. Each entity runs independently; one entity's failure
never stops the others.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheduler(configFile)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "sync <entity>",
		Short: "Run a single entity sync once and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(configFile, args[0])
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the service stack shared by the run
// and sync commands. The returned cleanup closes the warehouse client and
// the database pool.
func setup(ctx context.Context, configFile string) (*config.Config, *syncer.Service, func(), error) {
	cfg := config.New()
	if configFile != "" {
		if err := config.Load(configFile, cfg); err != nil {
			return nil, nil, nil, err
		}
	}
	config.FromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	if err := logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Encoding:    cfg.Log.Encoding,
		Development: cfg.Log.Development,
	}); err != nil {
		return nil, nil, nil, err
	}

	wh, err := warehouse.NewClient(ctx, cfg.Warehouse)
	if err != nil {
		return nil, nil, nil, err
	}

	st, err := store.New(ctx, cfg.Database, cfg.Sync.BatchSize)
	if err != nil {
		_ = wh.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		st.Close()
		if err := wh.Close(); err != nil {
			logger.Warn("failed to close warehouse client", zap.Error(err))
		}
		_ = logger.Sync()
	}

	return cfg, syncer.New(wh, wh.Dataset(), st), cleanup, nil
}

// runScheduler starts every entity job and blocks until SIGINT or SIGTERM.
func runScheduler(configFile string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, svc, cleanup, err := setup(ctx, configFile)
	if err != nil {
		return err
	}
	defer cleanup()

	sched := scheduler.New()
	for _, job := range syncer.Jobs(svc, cfg.Sync.Schedules) {
		if err := sched.Add(job); err != nil {
			return fmt.Errorf("failed to register %s: %w", job.Name, err)
		}
	}

	var metricsSrv *http.Server
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsSrv = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("metrics endpoint listening", zap.String("addr", cfg.Metrics.Addr))
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	sched.Start()
	logger.Info("sync engine running", zap.String("version", version))

	<-ctx.Done()
	logger.Info("shutdown signal received")

	sched.Stop()
	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	return nil
}

// runOnce executes one entity's sync pass immediately.
func runOnce(configFile, entityName string) error {
	ctx := context.Background()

	cfg, svc, cleanup, err := setup(ctx, configFile)
	if err != nil {
		return err
	}
	defer cleanup()

	for _, job := range syncer.Jobs(svc, cfg.Sync.Schedules) {
		if job.Entity != entityName {
			continue
		}

		start := time.Now()
		count, err := job.Run(ctx)
		if err != nil {
			return fmt.Errorf("%s sync failed: %w", entityName, err)
		}

		logger.Info("sync complete",
			zap.String("entity", entityName),
			zap.Int("records", count),
			zap.Duration("duration", time.Since(start)))
		return nil
	}

	return fmt.Errorf("unknown entity %q; run 'bqsync list' to see valid names", entityName)
}
