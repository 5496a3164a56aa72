// Package export writes aggregated opening statistics as a flat CSV
// table for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/discochess/scorecard/internal/aggregate"
)

// Header is the exported column set, in order.
var Header = []string{
	"Opening", "Games", "Variations", "Wins", "Losses", "Draws",
	"Win_Rate", "White", "Black",
}

// WriteSummaries writes the summaries as CSV, one row per opening,
// preserving the input order. Win rate is formatted with one decimal.
func WriteSummaries(w io.Writer, summaries []aggregate.Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			s.Opening,
			strconv.Itoa(s.TotalGames),
			strconv.Itoa(s.VariationCount),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Draws),
			strconv.FormatFloat(s.WinRate, 'f', 1, 64),
			strconv.Itoa(s.WhiteGames),
			strconv.Itoa(s.BlackGames),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %q: %w", s.Opening, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
