package record

import (
	"testing"
	"time"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		in   string
		want Side
	}{
		{"W", SideWhite},
		{"w", SideWhite},
		{"WHITE", SideWhite},
		{"White", SideWhite},
		{" white ", SideWhite},
		{"B", SideBlack},
		{"black", SideBlack},
		{"Black", SideBlack},
		{"", SideUnknown},
		{"both", SideUnknown},
		{"x", SideUnknown},
	}

	for _, tt := range tests {
		if got := ParseSide(tt.in); got != tt.want {
			t.Errorf("ParseSide(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseResult(t *testing.T) {
	tests := []struct {
		in   string
		want Result
	}{
		{"Win", ResultWin},
		{"WIN", ResultWin},
		{" win ", ResultWin},
		{"loss", ResultLoss},
		{"Loss", ResultLoss},
		{"DRAW", ResultDraw},
		{"draw", ResultDraw},
		{"", ResultUnknown},
		{"stalemate", ResultUnknown},
		{"1-0", ResultUnknown},
	}

	for _, tt := range tests {
		if got := ParseResult(tt.in); got != tt.want {
			t.Errorf("ParseResult(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSideString(t *testing.T) {
	if got := SideWhite.String(); got != "White" {
		t.Errorf("SideWhite.String() = %q, want White", got)
	}
	if got := SideUnknown.String(); got != "Unknown" {
		t.Errorf("SideUnknown.String() = %q, want Unknown", got)
	}
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFilter_Match(t *testing.T) {
	rec := GameRecord{Date: date("2025-06-15"), Side: SideWhite}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"zero filter matches", Filter{}, true},
		{"inside date range", Filter{From: date("2025-06-01"), To: date("2025-06-30")}, true},
		{"before range", Filter{From: date("2025-07-01")}, false},
		{"after range", Filter{To: date("2025-06-01")}, false},
		{"boundary inclusive", Filter{From: date("2025-06-15"), To: date("2025-06-15")}, true},
		{"matching side", Filter{Side: SideWhite}, true},
		{"other side", Filter{Side: SideBlack}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(rec); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	records := []GameRecord{
		{Date: date("2025-01-01"), Side: SideWhite},
		{Date: date("2025-02-01"), Side: SideBlack},
		{Date: date("2025-03-01"), Side: SideWhite},
	}

	got := Filter{Side: SideWhite}.Apply(records)
	if len(got) != 2 {
		t.Fatalf("Apply() returned %d records, want 2", len(got))
	}
	if !got[0].Date.Equal(date("2025-01-01")) || !got[1].Date.Equal(date("2025-03-01")) {
		t.Error("Apply() did not preserve record order")
	}

	// Zero filter returns the input unchanged.
	if all := (Filter{}).Apply(records); len(all) != 3 {
		t.Errorf("zero Filter.Apply() returned %d records, want 3", len(all))
	}
}
