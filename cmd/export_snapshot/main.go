package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

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

	if cfg.SnapshotBucket == "" {
		logger.Log.Fatal("NEWSITEMS_SNAPSHOT_BUCKET environment variable not set")
	}

	ctx := context.Background()
	awsCfg, err := services.LoadAWSConfig(ctx, services.AWSConfig{Region: cfg.Region, Profile: cfg.Profile})
	if err != nil {
		logger.Log.Fatalf("Failed to load AWS config: %v", err)
	}

	store := services.NewNewsItemStore(dynamodb.NewFromConfig(awsCfg), cfg.Table)
	uploader := services.NewSnapshotUploader(s3.NewFromConfig(awsCfg), cfg.SnapshotBucket, awsCfg.Region)

	items, err := store.ScanNewsItems(ctx)
	if err != nil {
		logger.Log.Fatalf("Failed to read news items: %v", err)
	}

	snapshot := uploader.BuildSnapshot(items)
	results, err := uploader.UploadSnapshot(ctx, snapshot)
	if err != nil {
		logger.Log.Fatalf("Failed to upload snapshot: %v", err)
	}

	for _, r := range results {
		logger.Log.WithFields(logger.Fields{
			"key":  r.Key,
			"size": r.Size,
			"etag": r.ETag,
		}).Info("Uploaded snapshot")
	}
	fmt.Printf("Exported %d news items from %s (snapshot %s)\n", snapshot.TotalItems, cfg.Table, snapshot.SnapshotID)
}
