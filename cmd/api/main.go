package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tshirtMarketAi/internal/ai"
	"tshirtMarketAi/internal/analysis"
	"tshirtMarketAi/internal/config"
	"tshirtMarketAi/internal/events"
	"tshirtMarketAi/internal/imaging"
	"tshirtMarketAi/internal/logger"
	"tshirtMarketAi/internal/market"
	"tshirtMarketAi/internal/media"
	"tshirtMarketAi/internal/server"
	"tshirtMarketAi/internal/trends"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	ctx := context.Background()
	table, err := market.LoadTable(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Error("failed to load market reference table")
		os.Exit(1)
	}

	gateway, err := ai.NewGeminiGateway(ctx, cfg.Gemini)
	if err != nil {
		logger.WithError(err).Error("failed to init AI gateway")
		os.Exit(1)
	}

	var archiver media.Archiver
	switch {
	case cfg.Media.Bucket != "" && cfg.Media.Region != "":
		archiver, err = media.NewArchiver(ctx, cfg.Media)
		if err != nil {
			logger.WithError(err).Error("failed to init S3 archiver")
			os.Exit(1)
		}
	case cfg.Media.LocalDir != "":
		archiver, err = media.NewLocalArchiver(cfg.Media.LocalDir)
		if err != nil {
			logger.WithError(err).Error("failed to init local archiver")
			os.Exit(1)
		}
		logger.Info("image archiver: using local storage (S3 config missing)")
	default:
		archiver = media.Disabled()
		logger.Info("image archiver disabled")
	}

	broker := events.NewBroker()
	preconditioner := imaging.NewPreconditioner(cfg.Image)
	service := analysis.NewService(gateway, preconditioner, table, archiver, broker, cfg.Analysis.Workers)

	analysisHandler := analysis.Handler{
		Service:          service,
		Broker:           broker,
		MaxUploadBytes:   int64(cfg.Image.MaxFileBytes),
		DefaultLocations: cfg.Analysis.DefaultLocations,
	}
	marketHandler := market.Handler{Table: table, Trends: gateway}
	trendsHandler := trends.Handler{
		Provider: trends.NewProvider(gateway, cfg.Trends.CacheTTL),
		Gateway:  gateway,
	}

	srv := server.New(cfg.Port, analysisHandler, marketHandler, trendsHandler)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		logger.Info("shutting down server...")
		if err := srv.Close(); err != nil {
			logger.WithError(err).Error("server close error")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Error("server failed")
		os.Exit(1)
	}
}
