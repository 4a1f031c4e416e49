package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/sportsmgr/club-service/internal/api/http"
	"github.com/sportsmgr/club-service/internal/api/http/handlers"
	"github.com/sportsmgr/club-service/internal/auth"
	"github.com/sportsmgr/club-service/internal/config"
	"github.com/sportsmgr/club-service/internal/events"
	"github.com/sportsmgr/club-service/internal/observability"
	"github.com/sportsmgr/club-service/internal/persistence"
	"github.com/sportsmgr/club-service/internal/repository"
	"github.com/sportsmgr/club-service/internal/service"
	"github.com/sportsmgr/club-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	playerRepo := repository.NewPlayerRepository(pool)
	matchRepo := repository.NewMatchRepository(pool)
	tacticRepo := repository.NewTacticRepository(pool)
	statRepo := repository.NewStatLineRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, userRepo, redis.Client)
	rosterService := service.NewRosterService(teamRepo, playerRepo, dispatcher, logger)
	matchService := service.NewMatchService(matchRepo, teamRepo, dispatcher, logger)
	tacticService := service.NewTacticService(tacticRepo, teamRepo, dispatcher, logger)
	statsService := service.NewStatsService(statRepo, matchRepo, logger)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(redis),
		Auth:           handlers.NewAuthHandler(authService),
		Players:        handlers.NewPlayersHandler(rosterService),
		Teams:          handlers.NewTeamsHandler(rosterService),
		Matches:        handlers.NewMatchesHandler(matchService),
		Tactics:        handlers.NewTacticsHandler(tacticService),
		Statistics:     handlers.NewStatisticsHandler(statsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
