package analytics

import (
	"time"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/logger"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/metrics"
)

// Report is every table derived from one filtered batch of orders.
type Report struct {
	Rows         int                `json:"rows"`
	Daily        []DailySummary     `json:"daily"`
	Demographics []StateDemographic `json:"demographics"`
	RFM          RFMResult          `json:"rfm"`
	KPI          KPI                `json:"kpi"`
}

// Reporter runs the aggregators against caller-supplied orders. It keeps
// only read-only lookups, so one Reporter serves concurrent requests.
type Reporter struct {
	names     NameLookup
	refs      ReferenceLookup
	loc       *time.Location
	appLogger *logger.Logger
	metrics   *metrics.Collector
}

func NewReporter(names NameLookup, refs ReferenceLookup, loc *time.Location, appLogger *logger.Logger, collector *metrics.Collector) *Reporter {
	if loc == nil {
		loc = time.UTC
	}
	return &Reporter{
		names:     names,
		refs:      refs,
		loc:       loc,
		appLogger: appLogger,
		metrics:   collector,
	}
}

func (r *Reporter) Location() *time.Location {
	return r.loc
}

func (r *Reporter) Daily(orders []OrderLine) []DailySummary {
	t := r.metrics.TimeAggregator("daily")
	defer t.ObserveDuration()
	return DailyOrders(orders, r.loc)
}

func (r *Reporter) Demographics(orders []OrderLine) []StateDemographic {
	t := r.metrics.TimeAggregator("demographics")
	defer t.ObserveDuration()
	return CustomersByState(orders)
}

func (r *Reporter) RFM(orders []OrderLine) RFMResult {
	t := r.metrics.TimeAggregator("rfm")
	defer t.ObserveDuration()
	return BuildRFM(orders, r.names, r.refs, r.loc)
}

// Build runs every aggregator over orders. The slice is only read.
func (r *Reporter) Build(orders []OrderLine) Report {
	const component = "Reporter"

	report := Report{
		Rows:         len(orders),
		Daily:        r.Daily(orders),
		Demographics: r.Demographics(orders),
		RFM:          r.RFM(orders),
	}
	report.KPI = ComputeKPI(report.Daily, report.RFM.States)
	r.metrics.RecordReport("full", len(orders))

	r.appLogger.Debug(component, "Report built: rows=%d days=%d states=%d customers=%d",
		report.Rows, len(report.Daily), len(report.RFM.States), len(report.RFM.Customers))
	if missing := countUnnamed(report.RFM.States); missing > 0 {
		r.appLogger.Warn(component, "States without a display name: count=%d", missing)
	}
	return report
}

// BuildRange filters ds to the inclusive day range and builds the report.
func (r *Reporter) BuildRange(ds Dataset, start, end time.Time) Report {
	return r.Build(ds.Between(start, end).Orders)
}

func countUnnamed(states []StateRFMSummary) int {
	n := 0
	for _, s := range states {
		if s.StateName == nil {
			n++
		}
	}
	return n
}
