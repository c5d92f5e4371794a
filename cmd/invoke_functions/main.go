package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	lambdaclient "github.com/aws/aws-sdk-go-v2/service/lambda"

	"newsitems-api/internal/config"
	"newsitems-api/internal/logger"
	"newsitems-api/internal/services"
)

func main() {
	title := flag.String("title", "Smoke test", "title to submit")
	description := flag.String("description", "Submitted by invoke_functions", "description to submit")
	date := flag.String("date", time.Now().Format("2006-01-02"), "date to submit")
	skipSubmit := flag.Bool("skip-submit", false, "only call the listing function")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	awsCfg, err := services.LoadAWSConfig(ctx, services.AWSConfig{Region: cfg.Region, Profile: cfg.Profile})
	if err != nil {
		logger.Log.Fatalf("Failed to load AWS config: %v", err)
	}
	invoker := services.NewFunctionInvoker(lambdaclient.NewFromConfig(awsCfg))

	failed := false

	if !*skipSubmit {
		fmt.Printf("=== Invoking %s ===\n", cfg.SubmitFunction)
		resp, err := invoker.InvokeProxy(ctx, cfg.SubmitFunction, events.APIGatewayProxyRequest{
			HTTPMethod: http.MethodPost,
			Path:       "/newsitems",
			QueryStringParameters: map[string]string{
				"title":       *title,
				"description": *description,
				"date":        *date,
			},
		})
		switch {
		case err != nil:
			fmt.Printf("❌ %v\n", err)
			failed = true
		case resp.StatusCode != http.StatusCreated:
			fmt.Printf("❌ status %d: %s\n", resp.StatusCode, resp.Body)
			failed = true
		default:
			fmt.Printf("✅ status %d\n", resp.StatusCode)
		}
	}

	fmt.Printf("=== Invoking %s ===\n", cfg.ListFunction)
	resp, err := invoker.InvokeProxy(ctx, cfg.ListFunction, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/newsitems",
	})
	switch {
	case err != nil:
		fmt.Printf("❌ %v\n", err)
		failed = true
	case resp.StatusCode != http.StatusOK:
		fmt.Printf("❌ status %d: %s\n", resp.StatusCode, resp.Body)
		failed = true
	default:
		fmt.Printf("✅ status %d, %d bytes\n", resp.StatusCode, len(resp.Body))
	}

	if failed {
		os.Exit(1)
	}
}
