// Package scorecard computes opening statistics and performance
// insights from a personal chess game log.
//
// Example usage:
//
//	src, err := csvsource.New("games.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := scorecard.New(scorecard.WithSource(src))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	report, err := client.OpeningReport(ctx, scorecard.WithMinGames(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range report.Summaries {
//	    fmt.Printf("%s: %d games, %.1f%% wins\n", s.Opening, s.TotalGames, s.WinRate)
//	}
package scorecard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/discochess/scorecard/internal/aggregate"
	"github.com/discochess/scorecard/internal/export"
	"github.com/discochess/scorecard/internal/insight"
	"github.com/discochess/scorecard/internal/opening"
	"github.com/discochess/scorecard/internal/record"
	"github.com/discochess/scorecard/internal/source"
	"github.com/discochess/scorecard/internal/stats"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrNoSource indicates no data source was provided.
	ErrNoSource = errors.New("scorecard: no source provided")

	// ErrClosed indicates the client has been closed.
	ErrClosed = errors.New("scorecard: client closed")
)

// Client computes reports over a game log. Every call re-loads from
// the source and recomputes; no state is shared between calls. A
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	source    source.Source
	extractor *opening.Extractor
	stats     stats.Collector
	logger    *zap.Logger
	closed    atomic.Bool
}

// New creates a new Client with the given options.
// A data source is required; everything else has sensible defaults.
func New(opts ...Option) (*Client, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	c := &Client{
		source:    cfg.source,
		extractor: opening.NewExtractorWithRules(cfg.rules),
		stats:     cfg.stats,
		logger:    cfg.logger,
	}

	if c.source == nil {
		return nil, ErrNoSource
	}

	c.logger.Debug("client initialized", zap.Int("rules", len(cfg.rules)))

	return c, nil
}

// OpeningReport extracts opening labels from every game and rolls
// them up into per-opening statistics plus a two-level hierarchy.
//
// An empty record set, or a record set with no PGN data at all, is
// not an error: the report comes back empty with Advisory set.
func (c *Client) OpeningReport(ctx context.Context, opts ...ReportOption) (*OpeningReport, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	start := time.Now()

	cfg := newReportOptions(opts)
	records, err := c.loadRecords(ctx, cfg)
	if err != nil {
		return nil, err
	}

	report := &OpeningReport{TotalGames: len(records)}

	switch {
	case len(records) == 0:
		report.Advisory = "no games match the current filters"
	case !anyPGN(records):
		report.Advisory = "no PGN data available for opening analysis"
	default:
		games := c.labelGames(records)
		aggOpts := aggregate.Options{MinGames: cfg.minGames}
		report.Summaries = toSummaries(aggregate.Summarize(games, aggOpts))
		report.Openings = toNodes(aggregate.Tree(games, aggOpts))
		if len(report.Summaries) == 0 {
			report.Advisory = "no openings meet the minimum-games threshold"
		}
	}

	c.stats.IncCounter(stats.MetricReports, 1)
	c.stats.SetGauge(stats.MetricReportOpenings, int64(len(report.Summaries)))
	c.stats.ObserveHistogram(stats.MetricReportDuration, time.Since(start).Seconds())

	c.logger.Debug("opening report computed",
		zap.Int("games", report.TotalGames),
		zap.Int("openings", len(report.Summaries)),
		zap.String("advisory", report.Advisory),
	)

	return report, nil
}

// ExportCSV writes the opening statistics table to w in the download
// format: Opening, Games, Variations, Wins, Losses, Draws, Win_Rate,
// White, Black.
func (c *Client) ExportCSV(ctx context.Context, w io.Writer, opts ...ReportOption) error {
	if c.closed.Load() {
		return ErrClosed
	}

	cfg := newReportOptions(opts)
	records, err := c.loadRecords(ctx, cfg)
	if err != nil {
		return err
	}

	var summaries []aggregate.Summary
	if anyPGN(records) {
		games := c.labelGames(records)
		summaries = aggregate.Summarize(games, aggregate.Options{MinGames: cfg.minGames})
	}

	return export.WriteSummaries(w, summaries)
}

// Insights generates plain-text performance observations over the
// (optionally filtered) game log.
func (c *Client) Insights(ctx context.Context, opts ...ReportOption) (*Insights, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}

	cfg := newReportOptions(opts)
	records, err := c.loadRecords(ctx, cfg)
	if err != nil {
		return nil, err
	}

	r := insight.Generate(records)
	return &Insights{
		TotalGames: r.TotalGames,
		Wins:       r.Wins,
		Losses:     r.Losses,
		Draws:      r.Draws,
		WinRate:    r.WinRate,
		Messages:   r.Messages,
	}, nil
}

// Close releases all resources associated with the client.
// After Close, the client should not be used.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	if c.source != nil {
		if err := c.source.Close(); err != nil {
			return fmt.Errorf("closing source: %w", err)
		}
	}

	return nil
}

// Source returns the data source used by this client.
func (c *Client) Source() source.Source {
	return c.source
}

// loadRecords loads the game log and applies the report filter.
func (c *Client) loadRecords(ctx context.Context, cfg reportOptions) ([]record.GameRecord, error) {
	c.stats.IncCounter(stats.MetricSourceLoads, 1)

	records, err := c.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	c.stats.IncCounter(stats.MetricRecordsLoaded, int64(len(records)))

	return cfg.filter.Apply(records), nil
}

// labelGames extracts an opening label for every record, applying the
// display sentinels for games that could not be classified.
func (c *Client) labelGames(records []record.GameRecord) []aggregate.Game {
	games := make([]aggregate.Game, 0, len(records))
	for _, rec := range records {
		label, method := c.extractor.Extract(rec.PGN)
		switch method {
		case opening.MethodHeuristic:
			c.stats.IncCounter(stats.MetricHeuristicFallbacks, 1)
		case opening.MethodNone:
			c.stats.IncCounter(stats.MetricUnlabeledGames, 1)
		}

		games = append(games, aggregate.Game{
			Opening:   label.DisplayOpening(),
			Variation: label.DisplayVariation(),
			Result:    rec.Result,
			Side:      rec.Side,
		})
	}
	return games
}

// anyPGN reports whether at least one record carries game text.
func anyPGN(records []record.GameRecord) bool {
	for _, rec := range records {
		if rec.PGN != "" {
			return true
		}
	}
	return false
}

// toSummaries converts internal summaries to the public type.
func toSummaries(in []aggregate.Summary) []OpeningSummary {
	out := make([]OpeningSummary, len(in))
	for i, s := range in {
		out[i] = OpeningSummary{
			Opening:        s.Opening,
			TotalGames:     s.TotalGames,
			Wins:           s.Wins,
			Losses:         s.Losses,
			Draws:          s.Draws,
			WinRate:        s.WinRate,
			WhiteGames:     s.WhiteGames,
			BlackGames:     s.BlackGames,
			VariationCount: s.VariationCount,
		}
	}
	return out
}

// toNodes converts internal tree nodes to the public type.
func toNodes(in []aggregate.Node) []OpeningNode {
	out := make([]OpeningNode, len(in))
	for i, n := range in {
		node := OpeningNode{
			Opening: n.Opening,
			Games:   n.Games,
			WinRate: n.WinRate,
		}
		node.Variations = make([]VariationNode, len(n.Variations))
		for j, v := range n.Variations {
			node.Variations[j] = VariationNode{
				Name:    v.Name,
				Games:   v.Games,
				WinRate: v.WinRate,
			}
		}
		out[i] = node
	}
	return out
}
