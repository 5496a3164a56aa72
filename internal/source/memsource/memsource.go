// Package memsource provides an in-memory source implementation for
// testing and embedding.
package memsource

import (
	"context"
	"sync"

	"github.com/discochess/scorecard/internal/record"
	"github.com/discochess/scorecard/internal/source"
)

// Compile-time check that Source implements source.Source.
var _ source.Source = (*Source)(nil)

// Source is an in-memory game record source.
type Source struct {
	mu      sync.RWMutex
	records []record.GameRecord
}

// New creates a new in-memory source holding the given records.
func New(records ...record.GameRecord) *Source {
	s := &Source{}
	s.SetRecords(records)
	return s
}

// SetRecords replaces the stored records (for test setup).
// The slice is copied to prevent caller mutations from affecting the
// source.
func (s *Source) SetRecords(records []record.GameRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]record.GameRecord, len(records))
	copy(s.records, records)
}

// Add appends records to the source.
func (s *Source) Add(records ...record.GameRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
}

// Load returns a copy of the stored records.
func (s *Source) Load(ctx context.Context) ([]record.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]record.GameRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Close is a no-op for the memory source.
func (s *Source) Close() error {
	return nil
}
