package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/discount-impact-service/internal/pkg/logger"
)

type options struct {
	projectID  string
	instanceID string
	databaseID string
	migrateDir string
}

func (o options) instanceName() string {
	return fmt.Sprintf("projects/%s/instances/%s", o.projectID, o.instanceID)
}

func (o options) databaseName() string {
	return fmt.Sprintf("%s/databases/%s", o.instanceName(), o.databaseID)
}

func main() {
	var opts options
	flag.StringVar(&opts.projectID, "project", getEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	flag.StringVar(&opts.instanceID, "instance", getEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	flag.StringVar(&opts.databaseID, "database", getEnvOrDefault("SPANNER_DATABASE_ID", "discount-impact-db"), "Spanner database ID")
	flag.StringVar(&opts.migrateDir, "migrations", "migrations", "Directory containing migration SQL files")
	flag.Parse()

	log, err := logger.New(getEnvOrDefault("APP_STAGE", "dev"), os.Getenv("LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.Info("using Spanner emulator", zap.String("host", host))
	}

	if err := run(context.Background(), opts, log); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("migrations completed")
}

func run(ctx context.Context, opts options, log *zap.Logger) error {
	if err := ensureInstance(ctx, opts, log); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}

	if err := ensureDatabase(ctx, opts, log); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	if err := applyMigrations(ctx, opts, log); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func ensureInstance(ctx context.Context, opts options, log *zap.Logger) error {
	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: opts.instanceName()})
	if err == nil {
		log.Info("instance exists", zap.String("instance", opts.instanceID))
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check instance: %w", err)
	}

	log.Info("creating instance", zap.String("instance", opts.instanceID))
	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     "projects/" + opts.projectID,
		InstanceId: opts.instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", opts.projectID),
			DisplayName: "Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create instance: %w", err)
	}

	// The emulator may report completion oddly; only AlreadyExists is benign.
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		log.Warn("instance creation did not confirm", zap.Error(err))
	}
	return nil
}

func ensureDatabase(ctx context.Context, opts options, log *zap.Logger) error {
	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: opts.databaseName()})
	if err == nil {
		log.Info("database exists", zap.String("database", opts.databaseID))
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check database: %w", err)
	}

	log.Info("creating database", zap.String("database", opts.databaseID))
	op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          opts.instanceName(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", opts.databaseID),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create database: %w", err)
	}

	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

func applyMigrations(ctx context.Context, opts options, log *zap.Logger) error {
	files, err := filepath.Glob(filepath.Join(opts.migrateDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migration files: %w", err)
	}
	if len(files) == 0 {
		log.Warn("no migration files found", zap.String("dir", opts.migrateDir))
		return nil
	}
	sort.Strings(files)

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	for _, file := range files {
		name := filepath.Base(file)

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		statements := splitDDLStatements(string(content))
		if len(statements) == 0 {
			continue
		}

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   opts.databaseName(),
			Statements: statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", name, err)
		}

		log.Info("migration applied", zap.String("file", name), zap.Int("statements", len(statements)))
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
