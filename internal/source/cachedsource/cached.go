// Package cachedsource wraps another source with time-boxed re-fetch
// suppression: repeated loads within the TTL return the cached table
// instead of hitting the underlying source again.
package cachedsource

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/discochess/scorecard/internal/record"
	"github.com/discochess/scorecard/internal/source"
)

// Compile-time check that Source implements source.Source.
var _ source.Source = (*Source)(nil)

// The cache holds a single entry, the whole dataset.
const datasetKey = "dataset"

// Source wraps another Source with a TTL cache.
type Source struct {
	underlying source.Source
	cache      *expirable.LRU[string, []record.GameRecord]

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a cached source wrapping the given source.
// Loads within ttl of each other are served from memory.
func New(underlying source.Source, ttl time.Duration) *Source {
	return &Source{
		underlying: underlying,
		cache:      expirable.NewLRU[string, []record.GameRecord](1, nil, ttl),
	}
}

// Load returns the cached dataset when fresh, loading from the
// underlying source otherwise.
func (s *Source) Load(ctx context.Context) ([]record.GameRecord, error) {
	if records, ok := s.cache.Get(datasetKey); ok {
		s.hits.Add(1)
		return records, nil
	}
	s.misses.Add(1)

	records, err := s.underlying.Load(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Add(datasetKey, records)
	return records, nil
}

// Invalidate drops the cached dataset, forcing the next Load through.
func (s *Source) Invalidate() {
	s.cache.Remove(datasetKey)
}

// Close closes the underlying source.
func (s *Source) Close() error {
	return s.underlying.Close()
}

// Stats holds cache effectiveness counters.
type Stats struct {
	Hits   int64
	Misses int64
}

// Stats returns cache statistics.
func (s *Source) Stats() Stats {
	return Stats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
	}
}
