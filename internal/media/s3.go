package media

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"tshirtMarketAi/internal/config"
)

// NewArchiver wires an S3 client if the configuration is complete, otherwise a
// disabled archiver. S3-compatible endpoints (MinIO etc.) are supported via
// the Endpoint/ForcePathStyle settings.
func NewArchiver(ctx context.Context, cfg config.MediaConfig) (Archiver, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return Disabled(), nil
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
				if service == s3.ServiceID {
					return aws.Endpoint{
						URL:           endpoint,
						PartitionID:   "aws",
						SigningRegion: cfg.Region,
					}, nil
				}
				return aws.Endpoint{}, &aws.EndpointNotFoundError{}
			}),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws sdk config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = cfg.ForcePathStyle
		}
	})

	// Fallback so S3-compatible storage without PublicURL still works for reads.
	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" && cfg.Endpoint != "" && cfg.ForcePathStyle {
		publicURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.Endpoint, "/"), cfg.Bucket)
	}

	return &s3Archiver{
		client:  client,
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		baseURL: publicURL,
		prefix:  strings.Trim(cfg.KeyPrefix, "/"),
	}, nil
}

type s3Archiver struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
	prefix  string
}

// Archive stores the image in the configured bucket and returns a public URL.
func (a *s3Archiver) Archive(ctx context.Context, input ArchiveInput) (ArchiveResult, error) {
	if input.Body == nil {
		return ArchiveResult{}, errors.New("archive body is required")
	}

	key := a.buildKey(input.Filename)

	putInput := &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   input.Body,
	}
	if input.ContentType != "" {
		putInput.ContentType = aws.String(input.ContentType)
	}
	if input.Size > 0 {
		putInput.ContentLength = aws.Int64(input.Size)
	}

	if _, err := a.client.PutObject(ctx, putInput); err != nil {
		return ArchiveResult{}, fmt.Errorf("put object: %w", err)
	}

	return ArchiveResult{
		Key: key,
		URL: a.objectURL(key),
	}, nil
}

func (a *s3Archiver) buildKey(filename string) string {
	name := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" {
		name += ext
	}

	if a.prefix == "" {
		return name
	}

	return path.Join(a.prefix, name)
}

func (a *s3Archiver) objectURL(key string) string {
	if a.baseURL != "" {
		return fmt.Sprintf("%s/%s", a.baseURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key)
}
