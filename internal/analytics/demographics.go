package analytics

import "sort"

// CustomersByState counts distinct customer_id values per customer_state.
// Rows come back ordered by state code.
func CustomersByState(orders []OrderLine) []StateDemographic {
	customers := make(map[string]map[string]struct{})
	for _, o := range orders {
		set, ok := customers[o.CustomerState]
		if !ok {
			set = make(map[string]struct{})
			customers[o.CustomerState] = set
		}
		set[o.CustomerID] = struct{}{}
	}

	result := make([]StateDemographic, 0, len(customers))
	for state, set := range customers {
		result = append(result, StateDemographic{State: state, CustomerCount: len(set)})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].State < result[j].State
	})
	return result
}

// SortByCustomerCount orders a copy of rows from most to fewest customers.
func SortByCustomerCount(rows []StateDemographic) []StateDemographic {
	sorted := append([]StateDemographic(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CustomerCount > sorted[j].CustomerCount
	})
	return sorted
}
