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
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/dex-api/internal/handlers/dex/v1alpha1"
	"github.com/KirkDiggler/dex-api/internal/platform/otel"
)

const serviceName = "dex-api"

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the dex gRPC server exposing species, evolution, type and cache lookups.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (DEX_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := cfg.GRPCPort
	if cmd.Flags().Changed("port") {
		port = grpcPort
	}

	shutdownTracing, err := otel.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer flushTraces(shutdownTracing)

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	srv, healthServer, err := newGRPCServer(a)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("dex server listening", "port", port, "cache_backend", cfg.CacheBackend)
		serveErr <- srv.Serve(lis)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		slog.Info("Shutdown requested, draining in-flight lookups")
		healthServer.Shutdown()
		drain(srv, shutdownTimeout)
		return nil
	}
}

const shutdownTimeout = 30 * time.Second

// newGRPCServer registers the dex, health and reflection services behind the
// tracing, logging and panic recovery middleware
func newGRPCServer(a *app) (*grpc.Server, *health.Server, error) {
	logger := grpc_logging.LoggerFunc(logFunc)
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(),
		),
	)

	dexHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		LookupService: a.lookup,
		CacheStats:    a.store,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create dex handler: %w", err)
	}
	v1alpha1.RegisterDexServiceServer(srv, dexHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	for _, name := range []string{"", v1alpha1.DexServiceName} {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	reflection.Register(srv)
	return srv, healthServer, nil
}

// drain waits for in-flight calls up to timeout, then cuts them off
func drain(srv *grpc.Server, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Server stopped gracefully")
	case <-time.After(timeout):
		slog.Warn("Graceful shutdown timed out, forcing stop", "timeout", timeout)
		srv.Stop()
	}
}

func flushTraces(shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		slog.Warn("failed to flush traces", "error", err)
	}
}

// logFunc adapts the middleware logger onto slog; the level values line up
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
