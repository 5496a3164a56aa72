// Package aggregate rolls labeled games up into per-opening statistics.
//
// Aggregation is a pure function of its input: no state is kept
// between calls and input order never affects the output.
package aggregate

import (
	"sort"

	"github.com/discochess/scorecard/internal/record"
)

// Game is one labeled game, ready for aggregation.
type Game struct {
	// Opening and Variation are display labels; games that could not
	// be classified carry the sentinel names.
	Opening   string
	Variation string

	Result record.Result
	Side   record.Side
}

// Options configures aggregation.
type Options struct {
	// MinGames drops openings with fewer games from the output.
	// Zero means no threshold.
	MinGames int
}

// Summary holds the aggregated statistics for one opening.
type Summary struct {
	Opening    string
	TotalGames int
	Wins       int
	Losses     int
	Draws      int

	// WinRate is a percentage in [0, 100]; 0 when TotalGames is 0.
	WinRate float64

	WhiteGames int
	BlackGames int

	// VariationCount is the number of distinct variation labels seen.
	VariationCount int
}

// Summarize groups games by opening and computes per-opening summaries.
//
// Output ordering is deterministic: descending by total games, ties
// broken by opening name ascending.
func Summarize(games []Game, opts Options) []Summary {
	type bucket struct {
		summary    Summary
		variations map[string]struct{}
	}

	buckets := make(map[string]*bucket)
	for _, g := range games {
		b, ok := buckets[g.Opening]
		if !ok {
			b = &bucket{
				summary:    Summary{Opening: g.Opening},
				variations: make(map[string]struct{}),
			}
			buckets[g.Opening] = b
		}

		b.summary.TotalGames++
		switch g.Result {
		case record.ResultWin:
			b.summary.Wins++
		case record.ResultLoss:
			b.summary.Losses++
		case record.ResultDraw:
			b.summary.Draws++
		}
		switch g.Side {
		case record.SideWhite:
			b.summary.WhiteGames++
		case record.SideBlack:
			b.summary.BlackGames++
		}
		b.variations[g.Variation] = struct{}{}
	}

	summaries := make([]Summary, 0, len(buckets))
	for _, b := range buckets {
		if b.summary.TotalGames < opts.MinGames {
			continue
		}
		b.summary.VariationCount = len(b.variations)
		b.summary.WinRate = winRate(b.summary.Wins, b.summary.TotalGames)
		summaries = append(summaries, b.summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalGames != summaries[j].TotalGames {
			return summaries[i].TotalGames > summaries[j].TotalGames
		}
		return summaries[i].Opening < summaries[j].Opening
	})

	return summaries
}

// Variation holds the aggregated statistics for one variation within
// an opening.
type Variation struct {
	Name    string
	Games   int
	Wins    int
	WinRate float64
}

// Node is one opening with its variation breakdown, for hierarchical
// display.
type Node struct {
	Opening    string
	Games      int
	Wins       int
	WinRate    float64
	Variations []Variation
}

// Tree buckets games by (opening, variation) pair and returns a
// two-level hierarchy. Node ordering follows the same rule as
// Summarize; variations are ordered descending by games, ties by
// name ascending.
func Tree(games []Game, opts Options) []Node {
	type child struct {
		games int
		wins  int
	}
	type parent struct {
		games    int
		wins     int
		children map[string]*child
	}

	openings := make(map[string]*parent)
	for _, g := range games {
		p, ok := openings[g.Opening]
		if !ok {
			p = &parent{children: make(map[string]*child)}
			openings[g.Opening] = p
		}
		c, ok := p.children[g.Variation]
		if !ok {
			c = &child{}
			p.children[g.Variation] = c
		}

		p.games++
		c.games++
		if g.Result == record.ResultWin {
			p.wins++
			c.wins++
		}
	}

	nodes := make([]Node, 0, len(openings))
	for name, p := range openings {
		if p.games < opts.MinGames {
			continue
		}

		node := Node{
			Opening: name,
			Games:   p.games,
			Wins:    p.wins,
			WinRate: winRate(p.wins, p.games),
		}
		for vname, c := range p.children {
			node.Variations = append(node.Variations, Variation{
				Name:    vname,
				Games:   c.games,
				Wins:    c.wins,
				WinRate: winRate(c.wins, c.games),
			})
		}
		sort.Slice(node.Variations, func(i, j int) bool {
			if node.Variations[i].Games != node.Variations[j].Games {
				return node.Variations[i].Games > node.Variations[j].Games
			}
			return node.Variations[i].Name < node.Variations[j].Name
		})
		nodes = append(nodes, node)
	}

	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Games != nodes[j].Games {
			return nodes[i].Games > nodes[j].Games
		}
		return nodes[i].Opening < nodes[j].Opening
	})

	return nodes
}

// winRate returns wins as a percentage of total, guarding the empty
// bucket.
func winRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}
