package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"newsitems-api/internal/models"
)

const snapshotPrefix = "snapshots"

// S3API is the subset of the S3 client used by SnapshotUploader
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// SnapshotUploader writes news item listings to S3 as JSON documents
type SnapshotUploader struct {
	client     S3API
	bucketName string
	region     string
	now        func() time.Time
}

// S3UploadResult represents the result of an S3 upload operation
type S3UploadResult struct {
	Key        string    `json:"key"`
	ETag       string    `json:"etag"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	PublicURL  string    `json:"public_url"`
}

// NewSnapshotUploader creates an uploader for the given bucket
func NewSnapshotUploader(client S3API, bucketName, region string) *SnapshotUploader {
	return &SnapshotUploader{
		client:     client,
		bucketName: bucketName,
		region:     region,
		now:        time.Now,
	}
}

// BuildSnapshot wraps the items with snapshot metadata
func (s *SnapshotUploader) BuildSnapshot(items []models.NewsItem) *models.NewsItemSnapshot {
	list := models.NewNewsItemList(items)
	return &models.NewsItemSnapshot{
		SnapshotID:  uuid.NewString(),
		GeneratedAt: s.now().UTC(),
		TotalItems:  len(list.Data),
		Data:        list.Data,
	}
}

// UploadSnapshot writes the snapshot under a timestamped key and as latest.json
func (s *SnapshotUploader) UploadSnapshot(ctx context.Context, snapshot *models.NewsItemSnapshot) ([]*S3UploadResult, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	keys := []string{
		fmt.Sprintf("%s/%s.json", snapshotPrefix, snapshot.GeneratedAt.Format("2006-01-02T15-04-05Z")),
		snapshotPrefix + "/latest.json",
	}

	var results []*S3UploadResult
	for _, key := range keys {
		result, err := s.uploadJSON(ctx, data, key)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *SnapshotUploader) uploadJSON(ctx context.Context, data []byte, key string) (*S3UploadResult, error) {
	key = strings.TrimPrefix(key, "/")

	result, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucketName),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String("application/json"),
		CacheControl: aws.String("public, max-age=300"),
		Metadata: map[string]string{
			"uploaded-by": "newsitems-api",
			"upload-time": s.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}

	return &S3UploadResult{
		Key:        key,
		ETag:       strings.Trim(aws.ToString(result.ETag), `"`),
		Size:       int64(len(data)),
		UploadedAt: s.now(),
		PublicURL:  s.PublicURL(key),
	}, nil
}

// PublicURL returns the virtual-hosted style URL for an object key
func (s *SnapshotUploader) PublicURL(key string) string {
	key = strings.TrimPrefix(key, "/")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key)
}
