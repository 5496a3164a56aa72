package export

import (
	"strings"
	"testing"

	"github.com/discochess/scorecard/internal/aggregate"
)

func TestWriteSummaries(t *testing.T) {
	summaries := []aggregate.Summary{
		{
			Opening: "Sicilian Defense", TotalGames: 2, Wins: 1, Losses: 1,
			WinRate: 50, WhiteGames: 1, BlackGames: 1, VariationCount: 1,
		},
		{
			Opening: "Unknown Opening", TotalGames: 1, Draws: 1,
			WhiteGames: 1, VariationCount: 1,
		},
	}

	var sb strings.Builder
	if err := WriteSummaries(&sb, summaries); err != nil {
		t.Fatalf("WriteSummaries() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("output has %d lines, want 3", len(lines))
	}
	if lines[0] != "Opening,Games,Variations,Wins,Losses,Draws,Win_Rate,White,Black" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Sicilian Defense,2,1,1,1,0,50.0,1,1" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "Unknown Opening,1,1,0,0,1,0.0,1,0" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWriteSummaries_Empty(t *testing.T) {
	var sb strings.Builder
	if err := WriteSummaries(&sb, nil); err != nil {
		t.Fatalf("WriteSummaries() error = %v", err)
	}

	// Header only.
	if got := strings.TrimSpace(sb.String()); got != strings.Join(Header, ",") {
		t.Errorf("output = %q, want header only", got)
	}
}

func TestWriteSummaries_QuotesCommas(t *testing.T) {
	summaries := []aggregate.Summary{
		{Opening: "Queen's Gambit, Declined", TotalGames: 1, Wins: 1, WinRate: 100, VariationCount: 1},
	}

	var sb strings.Builder
	if err := WriteSummaries(&sb, summaries); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"Queen's Gambit, Declined"`) {
		t.Errorf("output = %q, want quoted opening name", sb.String())
	}
}
