package analytics

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// KPI holds the headline figures shown above the charts.
type KPI struct {
	TotalOrders      int     `json:"total_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	AverageFrequency float64 `json:"average_frequency"`
	AverageMonetary  float64 `json:"average_monetary"`
	AverageRecency   float64 `json:"average_recency"`
}

// ComputeKPI derives the headline figures from already built tables.
// Averages are per state, over the state RFM rows. AverageRecency is the
// mean of the state median recencies in days, rounded to one decimal.
func ComputeKPI(daily []DailySummary, states []StateRFMSummary) KPI {
	var kpi KPI

	revenue := make([]float64, len(daily))
	for i, d := range daily {
		kpi.TotalOrders += d.OrderCount
		revenue[i] = d.Revenue
	}
	kpi.TotalRevenue = floats.Sum(revenue)

	if len(states) == 0 {
		return kpi
	}
	frequency := make([]float64, len(states))
	monetary := make([]float64, len(states))
	recency := make([]float64, len(states))
	for i, s := range states {
		frequency[i] = float64(s.TotalFrequency)
		monetary[i] = s.TotalMonetary
		recency[i] = s.MedianRecency
	}
	kpi.AverageFrequency = stat.Mean(frequency, nil)
	kpi.AverageMonetary = stat.Mean(monetary, nil)
	kpi.AverageRecency = math.Round(stat.Mean(recency, nil)*10) / 10
	return kpi
}

// FormatCurrency renders amount in Brazilian reais for display.
func FormatCurrency(amount float64) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	return p.Sprint(currency.Symbol(currency.BRL.Amount(amount)))
}
