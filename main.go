package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Ch4s3/langler/config"
	"github.com/Ch4s3/langler/driver"
	"github.com/Ch4s3/langler/fetcher"
	"github.com/Ch4s3/langler/handler"
	"github.com/Ch4s3/langler/logger"
	"github.com/Ch4s3/langler/repository"
	"github.com/Ch4s3/langler/service"
)

func main() {
	log := logger.Init()
	cfg := config.Load()

	ctx := context.Background()

	dbPool, err := driver.InitDB(ctx, cfg.Database)
	if err != nil {
		log.Error("failed to initialize database connection pool", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	redisClient, err := driver.InitRedis(ctx, cfg.Redis)
	if err != nil {
		log.Error("failed to initialize redis client", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	modelRepo := repository.NewModelRepository(dbPool, log)
	docRepo := repository.NewTrainingDocumentRepository(dbPool, log)
	modelCache := repository.NewModelCache(redisClient, log)

	trainingService := service.NewTrainingService(modelRepo, docRepo, modelCache, log)
	classificationService := service.NewClassificationService(modelRepo, modelCache, cfg.Model.CacheTTL, log)

	articleFetcher := fetcher.New(cfg.Fetcher.Timeout, log)

	trainHandler := handler.NewTrainHandler(trainingService, log)
	classifyHandler := handler.NewClassifyHandler(classificationService, log)
	extractHandler := handler.NewExtractHandler(articleFetcher, log)
	healthHandler := handler.NewHealthHandler()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/v1/health", healthHandler.HandleHealth)
	e.POST("/api/v1/train", trainHandler.HandleTrain)
	e.POST("/api/v1/classify", classifyHandler.HandleClassify)
	e.GET("/api/v1/models", classifyHandler.HandleListModels)
	e.POST("/api/v1/extract", extractHandler.HandleExtract)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("starting langler server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
