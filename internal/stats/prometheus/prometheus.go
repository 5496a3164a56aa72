// Package prometheus provides a Prometheus-based stats collector.
//
// The library's metric set is fixed, so every metric is registered up
// front from the stats package's metric lists; unknown metric names
// are dropped silently.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/discochess/scorecard/internal/stats"
)

// Collector implements stats.Collector using Prometheus metrics.
type Collector struct {
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New creates a new Prometheus collector.
// If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	c := &Collector{
		counters:   make(map[string]prometheus.Counter, len(stats.Counters)),
		gauges:     make(map[string]prometheus.Gauge, len(stats.Gauges)),
		histograms: make(map[string]prometheus.Histogram, len(stats.Histograms)),
	}

	for _, name := range stats.Counters {
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: name})
		c.counters[name] = registerCounter(registry, counter)
	}
	for _, name := range stats.Gauges {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: name})
		c.gauges[name] = registerGauge(registry, gauge)
	}
	for _, name := range stats.Histograms {
		histogram := prometheus.NewHistogram(prometheus.HistogramOpts{Name: name, Help: name})
		c.histograms[name] = registerHistogram(registry, histogram)
	}

	return c
}

// IncCounter increments a counter metric.
func (c *Collector) IncCounter(name string, delta int64) {
	if counter, ok := c.counters[name]; ok {
		counter.Add(float64(delta))
	}
}

// SetGauge sets a gauge metric.
func (c *Collector) SetGauge(name string, value int64) {
	if gauge, ok := c.gauges[name]; ok {
		gauge.Set(float64(value))
	}
}

// ObserveHistogram records a value in a histogram.
func (c *Collector) ObserveHistogram(name string, value float64) {
	if histogram, ok := c.histograms[name]; ok {
		histogram.Observe(value)
	}
}

// registerCounter registers the counter, reusing an existing metric
// when one with the same name is already registered.
func registerCounter(registry prometheus.Registerer, counter prometheus.Counter) prometheus.Counter {
	if err := registry.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
	}
	return counter
}

func registerGauge(registry prometheus.Registerer, gauge prometheus.Gauge) prometheus.Gauge {
	if err := registry.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing
			}
		}
	}
	return gauge
}

func registerHistogram(registry prometheus.Registerer, histogram prometheus.Histogram) prometheus.Histogram {
	if err := registry.Register(histogram); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing
			}
		}
	}
	return histogram
}
