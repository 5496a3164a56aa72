package chart

import (
	"testing"

	"github.com/discochess/scorecard"
)

func TestWinRateColor_Buckets(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0, "#c62828"},
		{20, "#c62828"},
		{20.1, "#ef6c00"},
		{35, "#ef6c00"},
		{50, "#f9a825"},
		{65, "#f9a825"},
		{70, "#9ccc65"},
		{80, "#9ccc65"},
		{90, "#43a047"},
		{95, "#43a047"},
		{96, "#1b5e20"},
		{100, "#1b5e20"},
	}

	for _, tt := range tests {
		if got := WinRateColor(tt.rate); got != tt.want {
			t.Errorf("WinRateColor(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestWinRateColor_Distinct(t *testing.T) {
	// One distinct color per bucket.
	seen := make(map[string]float64)
	for _, rate := range []float64{10, 30, 50, 70, 90, 100} {
		color := WinRateColor(rate)
		if prev, ok := seen[color]; ok {
			t.Errorf("rates %v and %v share color %q", prev, rate, color)
		}
		seen[color] = rate
	}
}

func TestPopularity(t *testing.T) {
	summaries := []scorecard.OpeningSummary{
		{Opening: "Sicilian Defense", TotalGames: 10, WinRate: 60},
		{Opening: "Reti Opening", TotalGames: 3, WinRate: 33.3},
	}

	points := Popularity(summaries)
	if len(points) != 2 {
		t.Fatalf("Popularity() returned %d points, want 2", len(points))
	}
	if points[0].Size != 20 {
		t.Errorf("Size = %v, want 20 (games * 2)", points[0].Size)
	}
	if points[0].Color != WinRateColor(60) {
		t.Errorf("Color = %q, want win-rate color", points[0].Color)
	}
}

func TestPerformance(t *testing.T) {
	summaries := []scorecard.OpeningSummary{
		{Opening: "Open Game", TotalGames: 4, WinRate: 75},
	}

	bars := Performance(summaries)
	if len(bars) != 1 {
		t.Fatalf("Performance() returned %d bars, want 1", len(bars))
	}
	if bars[0].Label != "75.0%" {
		t.Errorf("Label = %q, want 75.0%%", bars[0].Label)
	}
	if bars[0].Games != 4 {
		t.Errorf("Games = %d, want 4", bars[0].Games)
	}
}

func TestTree(t *testing.T) {
	openings := []scorecard.OpeningNode{
		{
			Opening: "Sicilian Defense",
			Games:   3,
			WinRate: 66.7,
			Variations: []scorecard.VariationNode{
				{Name: "Najdorf", Games: 2, WinRate: 50},
				{Name: "Dragon", Games: 1, WinRate: 100},
			},
		},
	}

	nodes := Tree(openings)
	if len(nodes) != 3 {
		t.Fatalf("Tree() returned %d nodes, want 3", len(nodes))
	}

	parent := nodes[0]
	if parent.ID != "Sicilian Defense" || parent.Parent != "" {
		t.Errorf("parent node = %+v, want top-level Sicilian", parent)
	}
	if parent.Value != 3 {
		t.Errorf("parent Value = %d, want 3", parent.Value)
	}

	child := nodes[1]
	if child.ID != "Sicilian Defense - Najdorf" {
		t.Errorf("child ID = %q", child.ID)
	}
	if child.Parent != "Sicilian Defense" {
		t.Errorf("child Parent = %q", child.Parent)
	}

	// Parent value equals the sum of its children.
	var sum int
	for _, n := range nodes[1:] {
		sum += n.Value
	}
	if sum != parent.Value {
		t.Errorf("children sum = %d, parent value = %d", sum, parent.Value)
	}
}

func TestTree_Empty(t *testing.T) {
	if nodes := Tree(nil); len(nodes) != 0 {
		t.Errorf("Tree(nil) = %v, want empty", nodes)
	}
}
