package media

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"devevents/internal/domain"
)

// S3Config holds configuration for the S3-backed media store.
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the S3 endpoint for S3-compatible hosts
	// (MinIO, R2). Empty means AWS.
	Endpoint string
	// PublicBaseURL is prepended to object keys when building the
	// returned URL. Empty means the standard AWS object URL.
	PublicBaseURL string
}

// StoreConfig holds configuration for creating a media store.
type StoreConfig struct {
	Provider string
	S3       S3Config
}

// NewStore creates a media store from config. Provider "s3" uploads to an
// S3 bucket; "noop" or unknown uses a no-op store that fabricates URLs.
func NewStore(config StoreConfig) (domain.MediaStore, error) {
	switch config.Provider {
	case "s3":
		s3Config := config.S3
		if s3Config.Bucket == "" {
			return nil, fmt.Errorf("media store: s3 bucket is required")
		}
		awsCfg := aws.Config{
			Region: s3Config.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					s3Config.AccessKeyID,
					s3Config.SecretAccessKey,
					"",
				),
			),
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if s3Config.Endpoint != "" {
				o.BaseEndpoint = aws.String(s3Config.Endpoint)
				o.UsePathStyle = true
			}
		})
		return &s3Store{
			client:        client,
			bucket:        s3Config.Bucket,
			region:        s3Config.Region,
			publicBaseURL: s3Config.PublicBaseURL,
		}, nil
	case "noop":
		return &noopStore{}, nil
	default:
		log.Printf("[MEDIA] Unknown media provider %q, using noop", config.Provider)
		return &noopStore{}, nil
	}
}

type s3Store struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

func (s *s3Store) Upload(ctx context.Context, up *domain.ImageUpload) (string, error) {
	key := objectKey(up.Filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        up.Data,
		ContentType: aws.String(up.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to s3: %w", err)
	}
	return s.objectURL(key), nil
}

func (s *s3Store) objectURL(key string) string {
	if s.publicBaseURL != "" {
		return strings.TrimSuffix(s.publicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// objectKey builds a random key under events/, keeping the original
// file extension so the media host serves the right content type.
func objectKey(filename string) string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("media: rand.Read: %v", err))
	}
	ext := strings.ToLower(path.Ext(filename))
	return "events/" + hex.EncodeToString(buf) + ext
}

// noopStore fabricates URLs without contacting any host. Used in
// development and tests.
type noopStore struct{}

func (n *noopStore) Upload(ctx context.Context, up *domain.ImageUpload) (string, error) {
	url := "https://media.invalid/" + objectKey(up.Filename)
	log.Printf("[MEDIA] noop upload of %q -> %s", up.Filename, url)
	return url, nil
}
