package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/gaffer/internal/common/clock"
	"github.com/KirkDiggler/gaffer/internal/common/uuid"
	"github.com/KirkDiggler/gaffer/internal/config"
	"github.com/KirkDiggler/gaffer/internal/handlers/httpapi"
	competitorRepo "github.com/KirkDiggler/gaffer/internal/repositories/competitor"
	seasonRepo "github.com/KirkDiggler/gaffer/internal/repositories/season"
	teamRepo "github.com/KirkDiggler/gaffer/internal/repositories/team"
	"github.com/KirkDiggler/gaffer/internal/rules"
	"github.com/KirkDiggler/gaffer/internal/schedule"
	leagueService "github.com/KirkDiggler/gaffer/internal/services/league"
	"github.com/KirkDiggler/gaffer/pkg/logging"
)

func main() {
	// Local development overrides; missing file is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Setup()
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect to Redis", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	competitors, err := competitorRepo.NewRedis(&competitorRepo.Config{RedisClient: redisClient})
	if err != nil {
		slog.Error("failed to create competitor repository", "error", err)
		os.Exit(1)
	}

	teams, err := teamRepo.NewRedis(&teamRepo.Config{RedisClient: redisClient})
	if err != nil {
		slog.Error("failed to create team repository", "error", err)
		os.Exit(1)
	}

	seasons, err := seasonRepo.NewRedis(&seasonRepo.Config{RedisClient: redisClient})
	if err != nil {
		slog.Error("failed to create season repository", "error", err)
		os.Exit(1)
	}

	// Initialize the competition calendar and window gate
	gameweeks, err := cfg.Calendar()
	if err != nil {
		slog.Error("failed to parse calendar", "error", err)
		os.Exit(1)
	}

	calendar, err := schedule.NewCalendar(gameweeks)
	if err != nil {
		slog.Error("failed to build calendar", "error", err)
		os.Exit(1)
	}

	gate, err := schedule.NewGate(calendar, &clock.DefaultClock{})
	if err != nil {
		slog.Error("failed to build window gate", "error", err)
		os.Exit(1)
	}

	// Initialize the league service
	svc, err := leagueService.New(&leagueService.Config{
		CompetitorRepo: competitors,
		TeamRepo:       teams,
		SeasonRepo:     seasons,
		Gate:           gate,
		Rules:          rules.Default(),
		Clock:          &clock.DefaultClock{},
		UUID:           uuid.New(),
	})
	if err != nil {
		slog.Error("failed to create league service", "error", err)
		os.Exit(1)
	}

	handler, err := httpapi.New(svc)
	if err != nil {
		slog.Error("failed to create API handler", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("league server listening", "addr", cfg.Addr, "gameweeks", len(gameweeks))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for a termination signal, then drain
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
