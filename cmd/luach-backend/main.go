package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"

	"github.com/luach-app/luach-backend/internal/api"
	"github.com/luach-app/luach-backend/internal/archiver"
	events_service "github.com/luach-app/luach-backend/internal/business/events"
	"github.com/luach-app/luach-backend/internal/config"
	"github.com/luach-app/luach-backend/internal/database"
	"github.com/luach-app/luach-backend/internal/database/events"
	"github.com/luach-app/luach-backend/internal/database/user"
	"github.com/luach-app/luach-backend/internal/pkg/clock"
	"github.com/luach-app/luach-backend/internal/pkg/jwt"
	"github.com/luach-app/luach-backend/internal/pkg/oauth"
	"github.com/luach-app/luach-backend/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	jwts := jwt.NewManager(config.Secret(), config.JwtTTL())
	tokenParser := oauth.NewParser()

	redisPool := redis.NewRedisPool(logger)
	refreshTokens := redis.NewRefreshTokenRepository(redisPool, logger)
	eventsCache := redis.NewEventsCache(redisPool, logger)

	if err := database.RunMigrations(logger); err != nil {
		logger.Fatalw("unable to apply migrations", "err", err)
	}

	db, err := database.NewPGX(ctx)
	if err != nil {
		logger.Fatalw("unable to initialize db", "err", err)
	}
	usersRepository := user.NewRepository()
	eventsRepository := events.NewRepository(config.Location())

	clk := clock.NewSystem()
	eventsService := events_service.NewService(db, eventsRepository, eventsCache, clk, logger)

	sweeper := archiver.NewSweeper(logger, eventsService, clk, config.SweepSchedule())
	if err := sweeper.Start(ctx); err != nil {
		logger.Fatalw("unable to start archival sweeper", "err", err)
	}

	api, err := api.NewApi(
		logger,
		rand.Reader,
		clk,
		jwts,
		tokenParser,
		refreshTokens,
		db,
		usersRepository,
		eventsService,
	)
	if err != nil {
		logger.Fatalw("unable to initialize api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
