package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/shariarfaisal/snapshop/internal/config"
)

// R2Driver stores media in a Cloudflare R2 bucket (S3-compatible).
type R2Driver struct {
	client    *s3.Client
	bucket    string
	publicURL string // optional CDN URL, e.g. https://pub-xxxxx.r2.dev
}

func NewR2Driver(cfg *config.StorageConfig) (*R2Driver, error) {
	if cfg.R2Bucket == "" {
		return nil, fmt.Errorf("R2 bucket name is required")
	}
	if cfg.R2AccessKeyID == "" || cfg.R2SecretAccessKey == "" {
		return nil, fmt.Errorf("R2 credentials are required")
	}
	if cfg.R2AccountID == "" {
		return nil, fmt.Errorf("R2 account ID is required")
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2AccessKeyID,
			cfg.R2SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true // R2 requires path-style URLs
	})

	return &R2Driver{
		client:    client,
		bucket:    cfg.R2Bucket,
		publicURL: cfg.R2PublicURL,
	}, nil
}

func (d *R2Driver) Put(ctx context.Context, file io.Reader, key string) (string, string, error) {
	key = strings.TrimPrefix(key, "/")

	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentTypeForKey(key)),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to R2: %w", err)
	}

	return key, d.URL(key), nil
}

func (d *R2Driver) Remove(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, "/")

	_, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from R2: %w", err)
	}
	return nil
}

func (d *R2Driver) URL(key string) string {
	key = strings.TrimPrefix(key, "/")
	if d.publicURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(d.publicURL, "/"), key)
	}
	return fmt.Sprintf("https://pub-%s.r2.dev/%s", d.bucket, key)
}

func (d *R2Driver) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	key = strings.TrimPrefix(key, "/")

	result, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from R2: %w", err)
	}
	return result.Body, nil
}
