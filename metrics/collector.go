// Package metrics exposes resolution measurements to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/prodrate/solve"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "prodrate"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Collector records solver activity. It implements solve.Recorder.
type Collector struct {
	resolutions        *prometheus.CounterVec
	resolutionDuration prometheus.Histogram
	pivots             prometheus.Histogram
	groupFailures      prometheus.Counter
	decompositions     prometheus.Counter
	solveGroups        prometheus.Gauge
	recipeRates        *prometheus.GaugeVec
	unfinished         prometheus.Gauge
}

var _ solve.Recorder = (*Collector)(nil)

// NewCollector creates the metrics under namespace; empty selects DefaultNamespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &Collector{
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Total number of resolutions by result",
			},
			[]string{"result"},
		),
		resolutionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "resolution_duration_seconds",
				Help:      "Resolution duration distribution",
				Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
		),
		pivots: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "simplex",
				Name:      "pivots",
				Help:      "Simplex pivots per solved group",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		groupFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "group_failures_total",
				Help:      "Total number of solve groups without a solution",
			},
		),
		decompositions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decompositions_total",
				Help:      "Total number of recipe graph decompositions",
			},
		),
		solveGroups: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "solve_groups",
				Help:      "Number of solve groups in the last decomposition",
			},
		),
		recipeRates: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "recipe_rate",
				Help:      "Crafts per second of each recipe in the last observed resolution",
			},
			[]string{"recipe"},
		),
		unfinished: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "unfinished_items",
				Help:      "Items left unproduced by the last observed resolution",
			},
		),
	}
}

// Register registers all metrics with reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	metrics := []prometheus.Collector{
		c.resolutions,
		c.resolutionDuration,
		c.pivots,
		c.groupFailures,
		c.decompositions,
		c.solveGroups,
		c.recipeRates,
		c.unfinished,
	}
	for _, m := range metrics {
		if err := reg.Register(m); err != nil {
			return err
		}
	}

	return nil
}

// Decomposed records a decomposition into groups solve groups.
func (c *Collector) Decomposed(groups int) {
	c.decompositions.Inc()
	c.solveGroups.Set(float64(groups))
}

// GroupSolved records the pivots of one solved group.
func (c *Collector) GroupSolved(pivots int) {
	c.pivots.Observe(float64(pivots))
}

// GroupFailed records a group without a solution.
func (c *Collector) GroupFailed() {
	c.groupFailures.Inc()
}

// Resolved records a finished resolution.
func (c *Collector) Resolved(d time.Duration, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	c.resolutions.WithLabelValues(result).Inc()
	c.resolutionDuration.Observe(d.Seconds())
}

// ObserveTotals replaces the exported recipe rates with those of t.
func (c *Collector) ObserveTotals(t *solve.Totals) {
	c.recipeRates.Reset()
	for _, name := range t.Recipes() {
		rate, _ := t.Get(name)
		c.recipeRates.WithLabelValues(name).Set(rate.Float64())
	}
	c.unfinished.Set(float64(len(t.Unfinished)))
}
