package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

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

	awsCfg, err := services.LoadAWSConfig(context.Background(), services.AWSConfig{Region: cfg.Region})
	if err != nil {
		logger.Log.Fatalf("Failed to load AWS config: %v", err)
	}

	store := services.NewNewsItemStore(dynamodb.NewFromConfig(awsCfg), cfg.Table)
	lambda.Start(handlers.NewListHandler(store).Handle)
}
