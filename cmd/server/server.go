package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/deckbuilder-api/internal/config"
	"github.com/KirkDiggler/deckbuilder-api/internal/handlers/deckbuilder/v1alpha1"
	"github.com/KirkDiggler/deckbuilder-api/internal/platform/otel"
)

var (
	grpcPort    int
	store       string
	redisAddr   string
	sqlitePath  string
	catalogPath string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the deck builder gRPC server backed by Redis or SQLite.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (default from DECKBUILDER_PORT)")
	serverCmd.Flags().StringVar(&store, "store", "", "storage backend: redis or sqlite")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address")
	serverCmd.Flags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite database file")
	serverCmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog JSON file (default: embedded catalog)")
}

// loadConfig reads the environment and applies any flags the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = grpcPort
	}
	if flags.Changed("store") {
		cfg.Store = store
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("sqlite-path") {
		cfg.SQLitePath = sqlitePath
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = catalogPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	shutdownTracing, err := otel.Setup(ctx, "deckbuilder", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	app, err := buildApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	}
	if otel.Enabled(cfg.OTelEndpoint) {
		opts = append(opts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}
	srv := grpc.NewServer(opts...)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Service: app.Service,
		Catalog: app.Catalog,
	})
	if err != nil {
		return fmt.Errorf("failed to create deck builder handler: %w", err)
	}

	healthServer := registerServices(srv, handler)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d (store=%s)...", cfg.Port, cfg.Store)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// registerServices wires the deck builder, health and reflection services.
// Reflection can list the deck builder service but not describe it: its
// messages are JSON structs with no proto descriptors.
func registerServices(srv *grpc.Server, handler v1alpha1.DeckBuilderServiceServer) *health.Server {
	v1alpha1.RegisterDeckBuilderServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)
	return healthServer
}

func logFunc(_ context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}
