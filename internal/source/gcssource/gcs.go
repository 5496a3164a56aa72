// Package gcssource loads the game log CSV from a Google Cloud
// Storage object.
package gcssource

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"

	"github.com/discochess/scorecard/internal/codec"
	"github.com/discochess/scorecard/internal/record"
	"github.com/discochess/scorecard/internal/source"
	"github.com/discochess/scorecard/internal/source/csvsource"
)

// Compile-time check that Source implements source.Source.
var _ source.Source = (*Source)(nil)

// Source reads the dataset from a GCS object.
// Objects ending in .gz or .zst are decompressed transparently.
type Source struct {
	client *storage.Client
	bucket *storage.BucketHandle
	object string
}

// New creates a GCS source. The bucket must already exist.
func New(ctx context.Context, bucketName, object string) (*Source, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	return &Source{
		client: client,
		bucket: client.Bucket(bucketName),
		object: object,
	}, nil
}

// Load reads and parses the dataset object.
func (s *Source) Load(ctx context.Context) ([]record.GameRecord, error) {
	// Check for cancellation before starting.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	reader, err := s.bucket.Object(s.object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading object %q: %w", s.object, err)
	}
	defer reader.Close()

	decompressor, err := codec.ForPath(s.object).Reader(reader)
	if err != nil {
		return nil, fmt.Errorf("creating decompressor: %w", err)
	}
	defer decompressor.Close()

	records, err := csvsource.Parse(decompressor)
	if err != nil {
		return nil, fmt.Errorf("parsing object %q: %w", s.object, err)
	}
	return records, nil
}

// Close releases the GCS client.
func (s *Source) Close() error {
	return s.client.Close()
}
