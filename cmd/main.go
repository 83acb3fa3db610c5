package main

import (
	"context"
	"errors"
	"fmt"
	"game-lab/auth"
	"game-lab/infrastructure/http/server"
	"game-lab/observability"
	"game-lab/repositories"
	"game-lab/rules"
	"game-lab/runtime"
	"game-lab/runtime/workers"
	"game-lab/services"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	grpc2 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const shutdownTimeout = 10 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a server failure.
// Deferred cleanups run before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	factory, err := rules.NewFactoryFromFile(config.RulesScript)
	if err != nil {
		return exitConfig, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Seat bindings (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.InspectPort, endpoint))
		database.StartDebugServer(db, config.InspectPort, endpoint, SeatBindingMapper)
	}

	// 3. Rooms & Supervision
	monitoring := observability.NewMonitoringManager(logger, config.MetricInterval)
	registry := runtime.NewRegistry(logger, monitoring)
	roomService := services.NewRoomService(registry, factory,
		repositories.NewSeatBindingRepository(db), config.SubscriberBufferSize, logger)

	sup := workers.NewSupervisor(logger, config.RestartInterval).
		Add(workers.NewRoomJanitor(logger, roomService, config.RoomTTL, config.JanitorInterval)).
		Add(monitoring).
		Add(workers.NewStatsReporter(logger, monitoring, registry.Len, config.ReportInterval))
	go sup.Run(ctx)

	errChan := make(chan error, 2)

	// 4. gRPC health
	healthAddress := fmt.Sprintf("%s:%d", config.Host, config.HealthPort)
	listener, err := net.Listen("tcp", healthAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", healthAddress, err)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc2.UnaryLoggingInterceptor(logger)))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)
	go func() {
		logger.Info("Starting gRPC health server", "address", healthAddress)
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 5. HTTP & websocket
	gameServer := server.NewGameServer(logger, roomService, monitoring,
		auth.NewTokenManager(config.SessionSecret, config.SessionDuration),
		server.Config{
			WriteTimeout:     config.WriteTimeout,
			EnableDebugRooms: config.EnableDebugRooms,
			AllowedOrigins:   config.Origins(),
			SecureCookies:    config.SecureCookies,
		})
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:              address,
		Handler:           gameServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	go func() {
		logger.Info("Starting HTTP server", "address", address, "debug_rooms", config.EnableDebugRooms, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Graceful shutdown. Live websockets end with the base context.
	logger.Info("Shutting down gracefully...")
	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	grpcServer.GracefulStop()
	sup.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

// buildBadgerOpts keeps bindings in memory when no path is configured.
func buildBadgerOpts(config Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if config.BadgerFilepath == "" {
		options = options.WithInMemory(true)
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

// SeatBindingMapper renders seat binding keys in the Badger inspector.
func SeatBindingMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	row.Type = "SEAT"
	row.Detail = fmt.Sprintf("seat %s", val)
	return row
}
