package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/go-gota/gota/series"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/geo"
)

// NameLookup resolves a state code to its display name.
type NameLookup interface {
	Lookup(id string) (string, bool)
}

// ReferenceLookup resolves a state code to its centroid and geometry.
type ReferenceLookup interface {
	Lookup(id string) (geo.Reference, bool)
}

type customerKey struct {
	uniqueID string
	state    string
	city     string
}

type customerGroup struct {
	orders       map[string]struct{}
	monetary     float64
	lastPurchase time.Time
}

type stateGroup struct {
	name      *string
	customers map[string]struct{}
	frequency []int
	monetary  []float64
	recency   []int
}

/*
BuildRFM computes recency, frequency and monetary value per customer group,
rolls them up per state and left-joins the state rows with the geographic
reference table.

Recency is measured against the latest purchase day in orders, so values
depend on the window the caller filtered and are not comparable across
windows. An empty input returns empty tables.
*/
func BuildRFM(orders []OrderLine, names NameLookup, refs ReferenceLookup, loc *time.Location) RFMResult {
	if len(orders) == 0 {
		return RFMResult{
			Customers:     []CustomerRFM{},
			States:        []StateRFMSummary{},
			StatesWithGeo: []StateRFMGeo{},
		}
	}
	if loc == nil {
		loc = time.UTC
	}

	customers := CustomerRFMTable(orders, names, loc)
	states := StateRFMTable(customers)
	return RFMResult{
		Customers:     customers,
		States:        states,
		StatesWithGeo: JoinGeo(states, refs),
	}
}

// CustomerRFMTable groups orders by (customer_unique_id, state, city).
func CustomerRFMTable(orders []OrderLine, names NameLookup, loc *time.Location) []CustomerRFM {
	if len(orders) == 0 {
		return []CustomerRFM{}
	}
	if loc == nil {
		loc = time.UTC
	}

	recent := orders[0].PurchasedAt
	groups := make(map[customerKey]*customerGroup)
	keys := make([]customerKey, 0)
	for _, o := range orders {
		if o.PurchasedAt.After(recent) {
			recent = o.PurchasedAt
		}
		k := customerKey{uniqueID: o.CustomerUniqueID, state: o.CustomerState, city: o.CustomerCity}
		g, ok := groups[k]
		if !ok {
			g = &customerGroup{orders: make(map[string]struct{}), lastPurchase: o.PurchasedAt}
			groups[k] = g
			keys = append(keys, k)
		}
		g.orders[o.OrderID] = struct{}{}
		g.monetary += o.Price
		if o.PurchasedAt.After(g.lastPurchase) {
			g.lastPurchase = o.PurchasedAt
		}
	}
	recentDay := truncateDay(recent, loc)

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.uniqueID != b.uniqueID {
			return a.uniqueID < b.uniqueID
		}
		if a.state != b.state {
			return a.state < b.state
		}
		return a.city < b.city
	})

	result := make([]CustomerRFM, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		result = append(result, CustomerRFM{
			CustomerUniqueID: k.uniqueID,
			State:            k.state,
			City:             k.city,
			StateName:        lookupName(names, k.state),
			Frequency:        len(g.orders),
			Monetary:         g.monetary,
			Recency:          daysBetween(truncateDay(g.lastPurchase, loc), recentDay),
		})
	}
	return result
}

// StateRFMTable rolls customer rows up per state, keeping states whose
// name is unknown. Rows are ordered by state code.
func StateRFMTable(customers []CustomerRFM) []StateRFMSummary {
	if len(customers) == 0 {
		return []StateRFMSummary{}
	}

	groups := make(map[string]*stateGroup)
	for _, c := range customers {
		g, ok := groups[c.State]
		if !ok {
			g = &stateGroup{name: c.StateName, customers: make(map[string]struct{})}
			groups[c.State] = g
		}
		g.customers[c.CustomerUniqueID] = struct{}{}
		g.frequency = append(g.frequency, c.Frequency)
		g.monetary = append(g.monetary, c.Monetary)
		g.recency = append(g.recency, c.Recency)
	}

	var grandFrequency, grandMonetary float64
	result := make([]StateRFMSummary, 0, len(groups))
	for state, g := range groups {
		row := StateRFMSummary{
			State:         state,
			StateName:     g.name,
			CountCustomer: len(g.customers),
			MinRecency:    g.recency[0],
			MedianRecency: series.Ints(g.recency).Median(),
		}
		for i := range g.frequency {
			row.TotalFrequency += g.frequency[i]
			row.MaxFrequency = max(row.MaxFrequency, g.frequency[i])
			row.TotalMonetary += g.monetary[i]
			row.MaxMonetary = math.Max(row.MaxMonetary, g.monetary[i])
			row.MinRecency = min(row.MinRecency, g.recency[i])
		}
		grandFrequency += float64(row.TotalFrequency)
		grandMonetary += row.TotalMonetary
		result = append(result, row)
	}

	for i := range result {
		result[i].PercentageFrequency = percentage(float64(result[i].TotalFrequency), grandFrequency)
		result[i].PercentageMonetary = percentage(result[i].TotalMonetary, grandMonetary)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].State < result[j].State
	})
	return result
}

// JoinGeo left-joins state rows with refs on the state code. Every state
// survives; unmatched ones keep nil geometry fields.
func JoinGeo(states []StateRFMSummary, refs ReferenceLookup) []StateRFMGeo {
	result := make([]StateRFMGeo, 0, len(states))
	for _, s := range states {
		row := StateRFMGeo{StateRFMSummary: s}
		if refs != nil {
			if ref, ok := refs.Lookup(s.State); ok {
				lat, lon := ref.CentroidLatitude, ref.CentroidLongitude
				row.CentroidLatitude = &lat
				row.CentroidLongitude = &lon
				row.Geometry = ref.Geometry
			}
		}
		result = append(result, row)
	}
	return result
}

// TopCustomersByFrequency returns up to n customer rows with the highest
// frequency, ties broken by monetary value.
func TopCustomersByFrequency(customers []CustomerRFM, n int) []CustomerRFM {
	sorted := append([]CustomerRFM(nil), customers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Frequency != sorted[j].Frequency {
			return sorted[i].Frequency > sorted[j].Frequency
		}
		return sorted[i].Monetary > sorted[j].Monetary
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// SortByTotalMonetary orders a copy of states from highest to lowest revenue.
func SortByTotalMonetary(states []StateRFMSummary) []StateRFMSummary {
	sorted := append([]StateRFMSummary(nil), states...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalMonetary > sorted[j].TotalMonetary
	})
	return sorted
}

func lookupName(names NameLookup, state string) *string {
	if names == nil {
		return nil
	}
	name, ok := names.Lookup(state)
	if !ok {
		return nil
	}
	return &name
}

// daysBetween counts whole days from earlier to later. Both arguments are
// midnights in the same location; rounding absorbs DST shifts.
func daysBetween(earlier, later time.Time) int {
	return int(math.Round(later.Sub(earlier).Hours() / 24))
}

func percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(part/total*1000) / 10
}
