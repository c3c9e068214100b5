package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-grid/internal/catalog"
	"github.com/KirkDiggler/rpg-grid/internal/config"
	"github.com/KirkDiggler/rpg-grid/internal/handlers/placement/v1alpha1"
	"github.com/KirkDiggler/rpg-grid/internal/orchestrators/building"
	"github.com/KirkDiggler/rpg-grid/internal/redis"
	"github.com/KirkDiggler/rpg-grid/internal/repositories/snapshots"
)

var (
	serveConfigPath  string
	serveCatalogPath string
	grpcPort         int
	redisAddr        string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC server",
	Long:  `Start the placement gRPC server. Snapshots go to Redis when an address is configured and stay in memory otherwise.`,
	RunE:  runServer,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a YAML config file")
	serveCmd.Flags().StringVar(&serveCatalogPath, "catalog", "", "Path to the template catalog (overrides config)")
	serveCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
	serveCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for snapshots (overrides config)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(serveConfigPath, serveCatalogPath)
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.Server.Port = grpcPort
	}
	if redisAddr != "" {
		cfg.Redis.Address = redisAddr
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	slog.Info("catalog loaded", "path", cfg.Catalog.Path, "templates", cat.Len())

	repo, err := newSnapshotRepository(ctx, cfg)
	if err != nil {
		return err
	}

	orchestrator, err := newOrchestrator(cfg, cat, repo)
	if err != nil {
		return fmt.Errorf("failed to create building orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{BuildingService: orchestrator})
	if err != nil {
		return fmt.Errorf("failed to create placement handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := grpc_logging.LoggerFunc(logFunc)
	recovery := grpc_recovery.WithRecoveryHandler(v1alpha1.RecoverPanic)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)

	v1alpha1.RegisterPlacementServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Server.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}

func newSnapshotRepository(ctx context.Context, cfg *config.Config) (snapshots.Repository, error) {
	if cfg.Redis.Address == "" {
		slog.Info("storing snapshots in memory")
		return snapshots.NewInMemory(), nil
	}

	client, err := redis.NewClient(cfg.Redis.Address, &redis.Options{DialTimeout: 5 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := redis.Ping(ctx, client); err != nil {
		return nil, err
	}

	slog.Info("storing snapshots in redis", "address", cfg.Redis.Address, "ttl", cfg.Redis.SnapshotTTL)
	return snapshots.NewRedis(&snapshots.RedisConfig{
		Client: client,
		TTL:    cfg.Redis.SnapshotTTL,
	})
}

func newOrchestrator(cfg *config.Config, cat *catalog.Catalog, repo snapshots.Repository) (*building.Orchestrator, error) {
	return building.New(&building.Config{
		Catalog:             cat,
		SnapshotRepo:        repo,
		Grid:                cfg.GridBase(),
		Layers:              cfg.Grid.Layers,
		LayerHeight:         cfg.Grid.LayerHeight,
		AutoDeselect:        cfg.AutoDeselect(),
		MissingRules:        cfg.MissingRulesPolicy(),
		RemovableCategories: cfg.RemovableCategories(),
		FloorYOffset:        cfg.Grid.FloorYOffset,
		LoosePickRadius:     cfg.Placement.LoosePickRadius,
		NeighborCheck:       cfg.NeighborCheck(),
		FloorTemplate:       cfg.Placement.FloorTemplate,
	})
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
