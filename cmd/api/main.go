package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/infrastructure/cache"
	"github.com/visibly/ai-visibility-api/infrastructure/database/postgres"
	"github.com/visibly/ai-visibility-api/infrastructure/repository"
	"github.com/visibly/ai-visibility-api/internal/api"
	"github.com/visibly/ai-visibility-api/internal/config"
	"github.com/visibly/ai-visibility-api/internal/scheduler"
	"github.com/visibly/ai-visibility-api/internal/usecases/analytics"
	"github.com/visibly/ai-visibility-api/internal/usecases/authenticating"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	categoryRepo := repository.NewCategoryRepository(pgConn)
	brandRepo := repository.NewBrandRepository(pgConn)
	promptRepo := repository.NewPromptRepository(pgConn)
	responseRepo := repository.NewResponseRepository(pgConn)
	statsRepo := repository.NewVisibilityStatsRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	redisClient := cache.NewClient(cfg.Redis)
	defer redisClient.Close()

	leaderboardCache := cache.NewLeaderboardCache(redisClient)
	if err := leaderboardCache.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis unavailable, leaderboards will be served from PostgreSQL")
	}

	analyticsService := analytics.NewService(
		categoryRepo,
		brandRepo,
		promptRepo,
		responseRepo,
		statsRepo,
		cfg,
	).WithCache(leaderboardCache)

	visibilitySyncService := scheduler.NewVisibilitySyncService(
		categoryRepo,
		statsRepo,
		leaderboardCache,
		cfg,
	)

	if err := visibilitySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting visibility sync scheduler")
	} else {
		logrus.Info("Visibility sync scheduler started")
		go visibilitySyncService.RunNow(ctx)
	}

	server, err := api.New(cfg, analyticsService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and working directory
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens and verifies the database connection
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
