package s3source

import (
	"context"
	"errors"
	"testing"
)

func TestLoad_Cancelled(t *testing.T) {
	s := &Source{bucket: "bucket", key: "games.csv"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestClose(t *testing.T) {
	s := &Source{}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
