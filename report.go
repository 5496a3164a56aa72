package scorecard

// OpeningSummary holds the aggregated statistics for one opening.
type OpeningSummary struct {
	// Opening is the display label; games that could not be
	// classified appear under "Unknown Opening".
	Opening string

	TotalGames int
	Wins       int
	Losses     int
	Draws      int

	// WinRate is a percentage in [0, 100]; 0 when TotalGames is 0.
	WinRate float64

	WhiteGames int
	BlackGames int

	// VariationCount is the number of distinct variation labels seen
	// for this opening.
	VariationCount int
}

// VariationNode is one variation within an opening's hierarchy.
type VariationNode struct {
	Name    string
	Games   int
	WinRate float64
}

// OpeningNode is one opening with its variation breakdown.
// The node's Games always equals the sum of its variations' Games.
type OpeningNode struct {
	Opening    string
	Games      int
	WinRate    float64
	Variations []VariationNode
}

// OpeningReport is the result of one opening analysis pass.
type OpeningReport struct {
	// Summaries are per-opening statistics, ordered descending by
	// total games with ties broken by opening name.
	Summaries []OpeningSummary

	// Openings is the two-level opening/variation hierarchy, in the
	// same order.
	Openings []OpeningNode

	// TotalGames is the number of records considered after filtering.
	TotalGames int

	// Advisory is a human-readable note set when the report is empty:
	// no matching games, no PGN data, or a threshold that excluded
	// everything. Empty otherwise.
	Advisory string
}

// Empty reports whether the report contains no opening data.
func (r *OpeningReport) Empty() bool {
	return len(r.Summaries) == 0
}

// Insights holds generated performance observations.
type Insights struct {
	TotalGames int
	Wins       int
	Losses     int
	Draws      int

	// WinRate is a percentage in [0, 100].
	WinRate float64

	// Messages are the observations in display order.
	Messages []string
}
