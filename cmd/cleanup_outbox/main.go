package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/discount-impact-service/internal/pkg/committer"
	"github.com/light-bringer/discount-impact-service/internal/pkg/logger"
)

// Config for the outbox cleanup job.
type Config struct {
	SpannerDB              string
	CompletedRetentionDays int
	FailedRetentionDays    int
	BatchSize              int
	DryRun                 bool
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", os.Getenv("SPANNER_DATABASE"), "Spanner database (projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&config.CompletedRetentionDays, "completed-retention", 30, "Retention days for completed events")
	flag.IntVar(&config.FailedRetentionDays, "failed-retention", 90, "Retention days for failed events")
	flag.IntVar(&config.BatchSize, "batch-size", 1000, "Events deleted per transaction")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Show what would be deleted without deleting")
	flag.Parse()

	log, err := logger.New(os.Getenv("APP_STAGE"), os.Getenv("LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := config.validate(); err != nil {
		log.Fatal("invalid flags", zap.Error(err))
	}

	if err := cleanupOutbox(context.Background(), config, log); err != nil {
		log.Fatal("cleanup failed", zap.Error(err))
	}
	log.Info("cleanup completed")
}

func (c Config) validate() error {
	switch {
	case c.SpannerDB == "":
		return fmt.Errorf("-database is required")
	case c.CompletedRetentionDays < 0 || c.FailedRetentionDays < 0:
		return fmt.Errorf("retention days must not be negative")
	case c.BatchSize <= 0:
		return fmt.Errorf("-batch-size must be positive")
	}
	return nil
}

func cleanupOutbox(ctx context.Context, config Config, log *zap.Logger) error {
	client, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now().UTC()
	policies := retentionPolicies(config, now)

	log.Info("starting outbox cleanup", zap.Bool("dry_run", config.DryRun))

	c := &cleaner{
		client:    client,
		committer: committer.NewCommitter(client),
		batchSize: config.BatchSize,
		log:       log,
	}

	var total int64
	for _, p := range policies {
		log.Info("retention policy",
			zap.String("status", p.status),
			zap.Time("cutoff", p.cutoff),
		)

		var n int64
		if config.DryRun {
			n, err = c.count(ctx, p)
		} else {
			n, err = c.purge(ctx, p)
		}
		if err != nil {
			return fmt.Errorf("failed to clean %s events: %w", p.status, err)
		}
		total += n
	}

	if config.DryRun {
		log.Info("dry run: events that would be deleted", zap.Int64("total", total))
		return nil
	}
	log.Info("events deleted", zap.Int64("total", total))
	return nil
}
