package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"github.com/roomsense/room-ranking-service/internal/app/config"
	"github.com/roomsense/room-ranking-service/internal/app/dto"
	"github.com/roomsense/room-ranking-service/internal/app/endpoints"
	"github.com/roomsense/room-ranking-service/internal/app/service"
	"github.com/roomsense/room-ranking-service/internal/app/transport"
	"github.com/roomsense/room-ranking-service/internal/pkg/ahp"
	"github.com/roomsense/room-ranking-service/internal/pkg/logger"
	"github.com/roomsense/room-ranking-service/internal/pkg/roomstore"
)

// @title           Room Ranking Service API
// @version         0.0.1
// @description     room-ranking-service
// @host      localhost:8080
// @BasePath  /
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	endpts := makeEndpoints(ctx, &cfg, redisClient)
	limiter := redis_rate.NewLimiter(redisClient)
	router := transport.MakeHTTPRouter(&cfg, endpts, limiter)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	if err := redisClient.Close(); err != nil {
		slog.ErrorContext(ctx, "failed to close redis client", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config, redisClient *redis.Client) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	store := roomstore.NewStore(redisClient)
	engine := ahp.NewEngine(mustEngineConfig(ctx, cfg))

	// init service endpoint
	return endpoints.Endpoints{
		RankingEndpoint:   endpoints.MakeRankingEndpoint(service.NewRankingService(store, engine)),
		RoomEndpoint:      endpoints.MakeRoomEndpoint(service.NewRoomService(store)),
		TelemetryEndpoint: endpoints.MakeTelemetryEndpoint(service.NewTelemetryService(store)),
	}
}

// mustEngineConfig validates the engine knobs up front so a bad deploy
// fails at startup, not on the first ranking request.
func mustEngineConfig(ctx context.Context, cfg *config.Config) ahp.Config {
	weightMethod, err := ahp.ParseWeightMethod(cfg.Engine.WeightMethod)
	if err != nil {
		slog.ErrorContext(ctx, "invalid engine config", slog.String("error", err.Error()))
		panic(err)
	}

	aggregation, err := ahp.ParseAggregationMode(cfg.Engine.Aggregation)
	if err != nil {
		slog.ErrorContext(ctx, "invalid engine config", slog.String("error", err.Error()))
		panic(err)
	}

	zeroFloor, err := ahp.ParseZeroFloorPolicy(cfg.Engine.ZeroFloorPolicy)
	if err != nil {
		slog.ErrorContext(ctx, "invalid engine config", slog.String("error", err.Error()))
		panic(err)
	}

	return ahp.Config{
		WeightMethod:         weightMethod,
		Aggregation:          aggregation,
		ZeroFloor:            zeroFloor,
		ConsistencyThreshold: cfg.Engine.ConsistencyThreshold,
	}
}
