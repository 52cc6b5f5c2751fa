package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizzfoot/platform/internal/auth"
	"github.com/quizzfoot/platform/internal/bingo"
	"github.com/quizzfoot/platform/internal/config"
	"github.com/quizzfoot/platform/internal/game"
	"github.com/quizzfoot/platform/internal/grid"
	"github.com/quizzfoot/platform/internal/leaderboard"
	"github.com/quizzfoot/platform/internal/logging"
	"github.com/quizzfoot/platform/internal/profile"
	"github.com/quizzfoot/platform/internal/question"
	"github.com/quizzfoot/platform/internal/server"
	ws "github.com/quizzfoot/platform/pkg/http/ws"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server

	sessions  *game.Manager
	bgCancels []context.CancelFunc
}

// New bootstraps configs, logger, Postgres, Redis and HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	pool, err := pgxpool.New(ctx, cfg.Postgres.ConnString())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	verifier := auth.NewVerifier([]byte(cfg.Security.JWTSecret), cfg.Security.JWTIssuer)

	// Question pool and pack selection.
	questionRepo := question.NewRepository(pool)
	questionCache := question.NewCache(redisClient, 0)
	questionSvc := question.NewService(questionRepo, questionCache, logger)

	// Rankings and player progression.
	leaderboardSvc := leaderboard.NewService(redisClient, logger, leaderboard.ServiceOptions{
		TopN:      cfg.Leaderboard.TopN,
		WindowTTL: cfg.Leaderboard.WindowTTL,
	})
	profileRepo := profile.NewRepository(pool)
	profileSvc := profile.NewService(profileRepo, leaderboardSvc, logger)

	// Live game sessions over WebSocket.
	sessions := game.NewManager(
		grid.NewRedisStore(redisClient),
		grid.DefaultCategories,
		grid.DefaultSubjects,
		bingo.Catalog,
		game.ManagerOptions{
			QuizBudget:  cfg.Game.QuizQuestionSeconds,
			DailyBudget: cfg.Game.DailyQuestionSeconds,
			GridTimer:   cfg.Game.GridTimerSeconds,
		},
		logger,
	)
	registry := ws.NewRegistry(logger)
	playHandler := game.NewHandler(sessions, registry, verifier, questionSvc, profileSvc, logger)

	apiServer := server.NewHTTPServer(cfg, logger, pool, redisClient, verifier, server.Handlers{
		Questions:    question.NewHTTPHandler(questionSvc, logger),
		Profiles:     profile.NewHTTPHandler(profileSvc, logger),
		Leaderboards: leaderboard.NewHTTPHandler(leaderboardSvc, logger),
		Play:         playHandler.HandleWebSocket,
	})

	return &Application{
		cfg:       cfg,
		logger:    logger,
		pool:      pool,
		redis:     redisClient,
		http:      apiServer,
		sessions:  sessions,
		bgCancels: make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	// Session clock: drives quiz timeouts and bingo countdowns.
	bgCtx, cancel := context.WithCancel(ctx)
	a.bgCancels = append(a.bgCancels, cancel)
	go a.sessions.Run(bgCtx)
}
