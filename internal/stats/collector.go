// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Report pipeline metrics.
	MetricRecordsLoaded      = "scorecard_records_loaded_total"
	MetricReports            = "scorecard_reports_total"
	MetricReportDuration     = "scorecard_report_duration_seconds"
	MetricReportOpenings     = "scorecard_report_openings"
	MetricHeuristicFallbacks = "scorecard_opening_heuristic_fallbacks_total"
	MetricUnlabeledGames     = "scorecard_unlabeled_games_total"

	// Source metrics.
	MetricSourceLoads = "scorecard_source_loads_total"
)

// Counters lists every counter metric, for collectors that register
// metrics up front.
var Counters = []string{
	MetricRecordsLoaded,
	MetricReports,
	MetricHeuristicFallbacks,
	MetricUnlabeledGames,
	MetricSourceLoads,
}

// Gauges lists every gauge metric.
var Gauges = []string{
	MetricReportOpenings,
}

// Histograms lists every histogram metric.
var Histograms = []string{
	MetricReportDuration,
}

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
