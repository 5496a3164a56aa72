// Package source defines the data-loading backend interface for game
// records.
package source

import (
	"context"

	"github.com/discochess/scorecard/internal/record"
)

// Source supplies the cleaned game log. Implementations handle the
// storage details internally; loading is a full-table read, there is
// no incremental protocol.
type Source interface {
	// Load reads all game records.
	Load(ctx context.Context) ([]record.GameRecord, error)

	// Close releases any resources held by the source.
	Close() error
}
