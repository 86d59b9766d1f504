package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/infrastructure/database/postgres"
	"github.com/visibly/ai-visibility-api/infrastructure/extraction"
	"github.com/visibly/ai-visibility-api/infrastructure/repository"
	"github.com/visibly/ai-visibility-api/internal/config"
	"github.com/visibly/ai-visibility-api/internal/worker"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		done := make(chan os.Signal, 1)
		signal.Notify(done, os.Interrupt, syscall.SIGTERM)
		<-done
		logrus.Info("Interrupt signal received")
		cancel()
	}()

	pgConn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}
	defer pgConn.Close()

	if err := pgConn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Error pinging PostgreSQL")
	}

	promptRepo := repository.NewPromptRepository(pgConn)
	brandRepo := repository.NewBrandRepository(pgConn)
	responseRepo := repository.NewResponseRepository(pgConn)

	aiClient := extraction.NewOpenAIClient(cfg.OpenAI)

	w := worker.New(
		promptRepo,
		brandRepo,
		responseRepo,
		aiClient,
		aiClient,
		cfg.Worker,
	)

	if err := w.Run(ctx); err != nil && err != context.Canceled {
		logrus.WithError(err).Error("Worker stopped with error")
	}
}
