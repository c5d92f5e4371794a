package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsitems-api/internal/config"
	"newsitems-api/internal/handlers"
	"newsitems-api/internal/logger"
	"newsitems-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var client services.DynamoDBAPI
	if cfg.LocalStore == config.StoreMemory {
		client = services.NewMemoryDynamoDB(0)
	} else {
		awsCfg, err := services.LoadAWSConfig(ctx, services.AWSConfig{Region: cfg.Region, Profile: cfg.Profile})
		if err != nil {
			logger.Log.Fatalf("Failed to load AWS config: %v", err)
		}
		client = dynamodb.NewFromConfig(awsCfg)
	}
	store := services.NewNewsItemStore(client, cfg.Table)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", handlers.NewHTTPHandler(
		handlers.NewSubmitHandler(store).Handle,
		handlers.NewListHandler(store).Handle,
	))

	srv := &http.Server{
		Addr:              cfg.LocalAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorf("Server shutdown failed: %v", err)
		}
	}()

	logger.Log.WithFields(logger.Fields{
		"addr":  cfg.LocalAddr,
		"store": cfg.LocalStore,
		"table": cfg.Table,
	}).Info("Local news item API listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatalf("Server failed: %v", err)
	}
}
