package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"

	"github.com/NeilHuang625/zcmetal/internal/config"
	"github.com/NeilHuang625/zcmetal/pkg/logger"
)

var Module = fx.Module("storage",
	fx.Provide(NewService),
)

// ErrDisabled is returned by every operation when storage is not configured.
var ErrDisabled = errors.New("storage service not enabled")

// Service provides read access to the S3-compatible media bucket
type Service struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	cfg           config.StorageConfig
	log           *slog.Logger
}

// Object describes one listed key. Key has the configured prefix removed.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// NewService creates a new storage service
func NewService(cfg *config.Config, log *slog.Logger) (*Service, error) {
	return newService(cfg.Storage, log)
}

func newService(cfg config.StorageConfig, log *slog.Logger) (*Service, error) {
	log = log.With(logger.Scope("storage"))
	cfg.Prefix = normalizePrefix(cfg.Prefix)

	if !cfg.IsConfigured() {
		log.Info("storage service disabled - no configuration provided")
		return &Service{cfg: cfg, log: log}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Path-style addressing is required for MinIO
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	log.Info("storage service initialized",
		slog.String("endpoint", cfg.Endpoint),
		slog.String("bucket", cfg.Bucket),
		slog.String("prefix", cfg.Prefix),
	)

	return &Service{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		cfg:           cfg,
		log:           log,
	}, nil
}

// Enabled returns true if the storage service is properly configured
func (s *Service) Enabled() bool {
	return s.client != nil
}

// normalizePrefix turns "assets", "/assets" and "assets/" into "assets/".
func normalizePrefix(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}

// objectKey maps a media-relative path to a bucket key
func (s *Service) objectKey(rel string) string {
	return s.cfg.Prefix + strings.TrimPrefix(rel, "/")
}

// ListKeys returns every object under prefix, relative to the configured
// bucket prefix, in the lexical order S3 lists them.
func (s *Service) ListKeys(ctx context.Context, prefix string) ([]Object, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}

	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.Bucket),
		Prefix: aws.String(s.objectKey(prefix)),
	})

	var out []Object
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			s.log.Error("failed to list objects",
				slog.String("prefix", prefix),
				logger.Error(err),
			)
			return nil, fmt.Errorf("list failed: %w", err)
		}
		for _, obj := range page.Contents {
			key := strings.TrimPrefix(aws.ToString(obj.Key), s.cfg.Prefix)
			if key == "" || strings.HasSuffix(key, "/") {
				continue
			}
			out = append(out, Object{
				Key:          key,
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	s.log.Debug("objects listed",
		slog.String("prefix", prefix),
		slog.Int("count", len(out)),
	)
	return out, nil
}

// Ping checks the bucket is reachable
func (s *Service) Ping(ctx context.Context) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.cfg.Bucket),
	})
	if err != nil {
		return fmt.Errorf("head bucket failed: %w", err)
	}
	return nil
}

// GetSignedDownloadURLOptions configures a signed download URL
type GetSignedDownloadURLOptions struct {
	ExpiresIn                  time.Duration
	ResponseContentDisposition string
}

// GetSignedDownloadURL generates a presigned URL for downloading an object.
// key is media-relative; the bucket prefix is added here.
func (s *Service) GetSignedDownloadURL(ctx context.Context, key string, opts GetSignedDownloadURLOptions) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}

	if opts.ExpiresIn == 0 {
		opts.ExpiresIn = s.cfg.URLExpiry
	}
	if opts.ExpiresIn == 0 {
		opts.ExpiresIn = time.Hour
	}

	input := &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.objectKey(key)),
	}

	if opts.ResponseContentDisposition != "" {
		input.ResponseContentDisposition = aws.String(opts.ResponseContentDisposition)
	}

	presignedReq, err := s.presignClient.PresignGetObject(ctx, input, func(po *s3.PresignOptions) {
		po.Expires = opts.ExpiresIn
	})
	if err != nil {
		s.log.Error("failed to generate presigned URL",
			slog.String("key", key),
			logger.Error(err),
		)
		return "", fmt.Errorf("presign failed: %w", err)
	}

	return presignedReq.URL, nil
}
