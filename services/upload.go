package services

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/nsahli/portfolio-backend/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ImageStore uploads project images to S3 and hands back the public URL
// used as the project's image_url.
type ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
	logger  zerolog.Logger
}

// NewImageStore builds an S3-backed image store. S3_BUCKET is required;
// S3_PUBLIC_BASE_URL overrides the derived public URL prefix (useful behind
// a CDN). Credentials and region come from the standard AWS environment.
func NewImageStore(ctx context.Context, cfg map[string]string) (*ImageStore, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET environment variable is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	baseURL := config.GetString(cfg, "S3_PUBLIC_BASE_URL",
		fmt.Sprintf("https://%s.s3.amazonaws.com", bucket))

	return &ImageStore{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  bucket,
		baseURL: baseURL,
		logger:  log.With().Str("service", "imageStore").Logger(),
	}, nil
}

// Upload stores the object under key and returns its public URL.
func (s *ImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	url := fmt.Sprintf("%s/%s", s.baseURL, key)
	s.logger.Info().Str("key", key).Str("url", url).Msg("Uploaded image")
	return url, nil
}
