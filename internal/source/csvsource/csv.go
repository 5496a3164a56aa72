// Package csvsource loads game records from a CSV file of cleaned
// rows, as exported from the shared game log.
//
// Columns are mapped by header name. Optional columns may be absent;
// in particular a log without a PGN column still loads, the records
// just carry empty game text. Malformed rows are skipped, never fatal.
package csvsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/discochess/scorecard/internal/codec"
	"github.com/discochess/scorecard/internal/record"
	"github.com/discochess/scorecard/internal/source"
)

// Compile-time check that Source implements source.Source.
var _ source.Source = (*Source)(nil)

// Column headers recognized by the parser, lower-cased.
const (
	colDate        = "date"
	colNumber      = "#"
	colSide        = "side"
	colResult      = "result"
	colPGN         = "pgn"
	colPerfRating  = "performance rating"
	colNewRating   = "new rating"
	colGameRating  = "game rating"
	colOppName     = "opponent name"
	colOppELO      = "opponent elo"
	colAccuracy    = "accuracy %"
	colACL         = "acl"
	colACLLongForm = "average centipawn loss (acl)"
)

// dateLayout is the calendar date format used by the game log.
const dateLayout = "2006-01-02"

// Source reads game records from a CSV file.
// Files ending in .gz or .zst are decompressed transparently.
type Source struct {
	path string
}

// New creates a CSV file source. The file must exist.
func New(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat dataset file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &Source{path: path}, nil
}

// Load reads and parses the whole file.
func (s *Source) Load(ctx context.Context) ([]record.GameRecord, error) {
	// Check for cancellation before starting I/O.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset file: %w", err)
	}
	defer f.Close()

	r, err := codec.ForPath(s.path).Reader(f)
	if err != nil {
		return nil, fmt.Errorf("creating decompressor: %w", err)
	}
	defer r.Close()

	records, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return records, nil
}

// Close is a no-op; the file is opened per Load.
func (s *Source) Close() error {
	return nil
}

// Parse reads game records from CSV data. The first row must be a
// header; columns are matched by name, case-insensitively. Rows
// without a parsable date are skipped (unplayed or malformed).
func Parse(r io.Reader) ([]record.GameRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // Rows may be ragged; missing cells read as absent.

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == colACLLongForm {
			key = colACL
		}
		cols[key] = i
	}

	var records []record.GameRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip malformed rows, keep the batch going.
			continue
		}

		date, err := time.Parse(dateLayout, field(row, cols, colDate))
		if err != nil {
			continue
		}

		records = append(records, record.GameRecord{
			Date:              date,
			Number:            parseInt(field(row, cols, colNumber)),
			Side:              record.ParseSide(field(row, cols, colSide)),
			Result:            record.ParseResult(field(row, cols, colResult)),
			PGN:               field(row, cols, colPGN),
			PerformanceRating: parseFloat(field(row, cols, colPerfRating)),
			NewRating:         parseFloat(field(row, cols, colNewRating)),
			GameRating:        parseFloat(field(row, cols, colGameRating)),
			OpponentName:      field(row, cols, colOppName),
			OpponentELO:       parseFloat(field(row, cols, colOppELO)),
			Accuracy:          parseFloat(field(row, cols, colAccuracy)),
			ACL:               parseFloat(field(row, cols, colACL)),
		})
	}

	return records, nil
}

// field returns the named cell, or empty when the column is absent or
// the row is too short.
func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseFloat converts a cell to float64, NaN when empty or invalid.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseInt converts a cell to int, 0 when empty or invalid.
func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
