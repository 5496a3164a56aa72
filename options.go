package scorecard

import (
	"time"

	"go.uber.org/zap"

	"github.com/discochess/scorecard/internal/opening"
	"github.com/discochess/scorecard/internal/record"
	"github.com/discochess/scorecard/internal/source"
	"github.com/discochess/scorecard/internal/stats"
)

// Option configures a Client.
type Option interface {
	apply(*options)
}

// options holds the client configuration.
type options struct {
	source source.Source
	rules  []opening.Rule
	stats  stats.Collector
	logger *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		rules:  opening.DefaultRules,
		stats:  stats.NewNoop(),
		logger: zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithSource sets the data source to use.
func WithSource(s source.Source) Option {
	return optionFunc(func(o *options) {
		o.source = s
	})
}

// WithRules sets the heuristic classification rule table.
// If not set, the default table is used.
func WithRules(rules []opening.Rule) Option {
	return optionFunc(func(o *options) {
		o.rules = rules
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// ReportOption configures a single report computation.
type ReportOption func(*reportOptions)

// reportOptions holds per-report parameters.
type reportOptions struct {
	minGames int
	filter   record.Filter
}

func newReportOptions(opts []ReportOption) reportOptions {
	var cfg reportOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMinGames drops openings with fewer than n games from the
// report. Zero means no threshold.
func WithMinGames(n int) ReportOption {
	return func(o *reportOptions) {
		o.minGames = n
	}
}

// WithSide restricts the report to games played as one color.
func WithSide(side record.Side) ReportOption {
	return func(o *reportOptions) {
		o.filter.Side = side
	}
}

// WithDateRange restricts the report to games within the given dates,
// inclusive. A zero bound is open.
func WithDateRange(from, to time.Time) ReportOption {
	return func(o *reportOptions) {
		o.filter.From = from
		o.filter.To = to
	}
}
