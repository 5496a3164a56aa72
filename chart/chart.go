// Package chart maps opening statistics into chart-ready payloads for
// an external renderer. All transforms are pure; the JSON field names
// match what the dashboard front end expects.
package chart

import (
	"fmt"

	"github.com/discochess/scorecard"
)

// Win-rate color buckets, worst to best. Thresholds are percentages.
var colorScale = []struct {
	max   float64
	color string
}{
	{20, "#c62828"},  // deep red
	{35, "#ef6c00"},  // orange
	{65, "#f9a825"},  // amber
	{80, "#9ccc65"},  // light green
	{95, "#43a047"},  // green
	{101, "#1b5e20"}, // dark green
}

// WinRateColor maps a win-rate percentage to its sentiment color.
func WinRateColor(rate float64) string {
	for _, bucket := range colorScale {
		if rate <= bucket.max {
			return bucket.color
		}
	}
	return colorScale[len(colorScale)-1].color
}

// BubblePoint is one opening in the popularity view: marker size
// tracks game count, color tracks win rate.
type BubblePoint struct {
	Opening string  `json:"opening"`
	Games   int     `json:"games"`
	WinRate float64 `json:"win_rate"`
	Size    float64 `json:"size"`
	Color   string  `json:"color"`
}

// Popularity builds the bubble-chart payload.
func Popularity(summaries []scorecard.OpeningSummary) []BubblePoint {
	points := make([]BubblePoint, len(summaries))
	for i, s := range summaries {
		points[i] = BubblePoint{
			Opening: s.Opening,
			Games:   s.TotalGames,
			WinRate: s.WinRate,
			Size:    float64(s.TotalGames) * 2,
			Color:   WinRateColor(s.WinRate),
		}
	}
	return points
}

// Bar is one opening in the performance view: bar height is the win
// rate, the game count rides along as a secondary series.
type Bar struct {
	Opening string  `json:"opening"`
	WinRate float64 `json:"win_rate"`
	Games   int     `json:"games"`
	Label   string  `json:"label"`
	Color   string  `json:"color"`
}

// Performance builds the bar-chart payload.
func Performance(summaries []scorecard.OpeningSummary) []Bar {
	bars := make([]Bar, len(summaries))
	for i, s := range summaries {
		bars[i] = Bar{
			Opening: s.Opening,
			WinRate: s.WinRate,
			Games:   s.TotalGames,
			Label:   fmt.Sprintf("%.1f%%", s.WinRate),
			Color:   WinRateColor(s.WinRate),
		}
	}
	return bars
}

// TreeNode is one node of the flattened opening/variation treemap.
// Parent nodes have an empty Parent; child IDs are
// "<opening> - <variation>".
type TreeNode struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Parent  string  `json:"parent"`
	Value   int     `json:"value"`
	WinRate float64 `json:"win_rate"`
	Color   string  `json:"color"`
}

// Tree builds the treemap payload. Every opening becomes a parent
// node valued at the sum of its variations' games, followed by its
// variation children.
func Tree(openings []scorecard.OpeningNode) []TreeNode {
	var nodes []TreeNode
	for _, o := range openings {
		nodes = append(nodes, TreeNode{
			ID:      o.Opening,
			Label:   o.Opening,
			Value:   o.Games,
			WinRate: o.WinRate,
			Color:   WinRateColor(o.WinRate),
		})
		for _, v := range o.Variations {
			nodes = append(nodes, TreeNode{
				ID:      o.Opening + " - " + v.Name,
				Label:   v.Name,
				Parent:  o.Opening,
				Value:   v.Games,
				WinRate: v.WinRate,
				Color:   WinRateColor(v.WinRate),
			})
		}
	}
	return nodes
}
