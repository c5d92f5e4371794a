package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"newsitems-api/internal/config"
	"newsitems-api/internal/logger"
	"newsitems-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	fmt.Printf("Using AWS Profile: %s\n", cfg.Profile)

	ctx := context.Background()
	awsCfg, err := services.LoadAWSConfig(ctx, services.AWSConfig{Region: cfg.Region, Profile: cfg.Profile})
	if err != nil {
		logger.Log.Fatalf("Failed to load AWS config: %v", err)
	}

	store := services.NewNewsItemStore(dynamodb.NewFromConfig(awsCfg), cfg.Table)

	fmt.Println("\n=== Testing DynamoDB Connectivity ===")
	fmt.Printf("Testing table: %s\n", store.TableName())

	n, err := store.Ping(ctx)
	if err != nil {
		fmt.Printf("❌ Failed to scan table %s: %v\n", store.TableName(), err)
		os.Exit(1)
	}
	fmt.Printf("✅ Successfully connected to table %s (found %d items)\n", store.TableName(), n)
}
