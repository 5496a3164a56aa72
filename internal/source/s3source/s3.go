// Package s3source loads the game log CSV from an S3 object.
package s3source

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/discochess/scorecard/internal/codec"
	"github.com/discochess/scorecard/internal/record"
	"github.com/discochess/scorecard/internal/source"
	"github.com/discochess/scorecard/internal/source/csvsource"
)

// Compile-time check that Source implements source.Source.
var _ source.Source = (*Source)(nil)

// Source reads the dataset from an S3 object.
// Objects ending in .gz or .zst are decompressed transparently.
type Source struct {
	client *s3.Client
	bucket string
	key    string
}

// New creates an S3 source. The bucket must already exist.
func New(ctx context.Context, bucket, key string, opts ...Option) (*Source, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	s := &Source{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		key:    key,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Option configures a Source.
type Option func(*Source) error

// WithRegion sets the AWS region.
func WithRegion(region string) Option {
	return func(s *Source) error {
		cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
		if err != nil {
			return fmt.Errorf("loading AWS config with region: %w", err)
		}
		s.client = s3.NewFromConfig(cfg)
		return nil
	}
}

// WithEndpoint sets a custom endpoint (for S3-compatible services
// like MinIO).
func WithEndpoint(endpoint string) Option {
	return func(s *Source) error {
		cfg, err := config.LoadDefaultConfig(context.Background())
		if err != nil {
			return fmt.Errorf("loading AWS config for endpoint: %w", err)
		}
		s.client = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
		return nil
	}
}

// Load reads and parses the dataset object.
func (s *Source) Load(ctx context.Context) ([]record.GameRecord, error) {
	// Check for cancellation before starting.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("reading object %q: %w", s.key, err)
	}
	defer result.Body.Close()

	decompressor, err := codec.ForPath(s.key).Reader(result.Body)
	if err != nil {
		return nil, fmt.Errorf("creating decompressor: %w", err)
	}
	defer decompressor.Close()

	records, err := csvsource.Parse(decompressor)
	if err != nil {
		return nil, fmt.Errorf("parsing object %q: %w", s.key, err)
	}
	return records, nil
}

// Close releases resources.
func (s *Source) Close() error {
	// The S3 client doesn't need explicit closing.
	return nil
}
