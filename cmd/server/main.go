package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/discount-impact-service/internal/config"
	"github.com/light-bringer/discount-impact-service/internal/pkg/logger"
	"github.com/light-bringer/discount-impact-service/internal/services"
	httptransport "github.com/light-bringer/discount-impact-service/internal/transport/http"
	pb "github.com/light-bringer/discount-impact-service/proto/simulation/v1"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Configuration and logging
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Stage, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting discount impact service",
		zap.String("grpc_port", cfg.GRPCPort),
		zap.String("http_port", cfg.HTTPPort),
		zap.Bool("history_enabled", cfg.HistoryEnabled),
		zap.Bool("narrative_model", cfg.NarrativeEnabled()),
	)

	// 2. Dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. gRPC server
	grpcServer := grpc.NewServer()
	pb.RegisterSimulationServiceServer(grpcServer, serviceOpts.SimulationHandler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.SimulationService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	// 4. HTTP server over the same handler
	if cfg.Stage == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	var limiter *httptransport.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = httptransport.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, log)
	}
	httpServer := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: httptransport.NewRouter(serviceOpts.SimulationHandler, httptransport.RouterConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimiter:    limiter,
		}, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 5. Serve until a signal or a server failure
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("gRPC server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down gracefully")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown error", zap.Error(err))
		}
		grpcServer.GracefulStop()
		return nil
	})

	return g.Wait()
}
