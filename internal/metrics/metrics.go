package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector provides application metrics collection
type Collector struct {
	// Ingestion Metrics
	IngestedRowsTotal *prometheus.CounterVec
	IngestionDuration prometheus.Histogram

	// Report Metrics
	ReportsTotal        *prometheus.CounterVec
	ReportBuildDuration *prometheus.HistogramVec
	ReportInputRows     prometheus.Histogram

	// Dataset Metrics
	DatasetRows prometheus.Gauge
}

// NewCollector registers the collectors on reg. A nil reg means the
// default Prometheus registry.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		IngestedRowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ingested_rows_total",
				Help:      "Order rows read from the source by outcome",
			},
			[]string{"outcome"}, // "accepted", "skipped"
		),

		IngestionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ingestion_duration_seconds",
				Help:      "Duration of snapshot ingestion in seconds",
				Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
		),

		ReportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reports_total",
				Help:      "Number of reports built by kind",
			},
			[]string{"kind"},
		),

		ReportBuildDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_build_duration_seconds",
				Help:      "Duration of a report build in seconds by aggregator",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
			},
			[]string{"aggregator"},
		),

		ReportInputRows: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_input_rows",
				Help:      "Number of filtered order rows handed to a report build",
				Buckets:   []float64{0, 10, 100, 1000, 10000, 50000, 100000, 200000},
			},
		),

		DatasetRows: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dataset_rows",
				Help:      "Order rows held in the loaded snapshot",
			},
		),
	}
}

// Timer provides timing functionality for operations
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer creates a new timer
func (c *Collector) NewTimer(histogram prometheus.Observer) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: histogram,
	}
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	duration := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(duration.Seconds())
	}
	return duration
}

// TimeAggregator starts a timer for one aggregator of a report build.
// Safe on a nil collector.
func (c *Collector) TimeAggregator(name string) *Timer {
	if c == nil {
		return &Timer{start: time.Now()}
	}
	return c.NewTimer(c.ReportBuildDuration.WithLabelValues(name))
}

// RecordReport counts a finished report build and its input size.
func (c *Collector) RecordReport(kind string, inputRows int) {
	if c == nil {
		return
	}
	c.ReportsTotal.WithLabelValues(kind).Inc()
	c.ReportInputRows.Observe(float64(inputRows))
}

// RecordIngestion counts accepted and skipped rows of one load.
func (c *Collector) RecordIngestion(accepted, skipped int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.IngestedRowsTotal.WithLabelValues("accepted").Add(float64(accepted))
	c.IngestedRowsTotal.WithLabelValues("skipped").Add(float64(skipped))
	c.IngestionDuration.Observe(elapsed.Seconds())
	c.DatasetRows.Set(float64(accepted))
}
