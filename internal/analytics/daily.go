package analytics

import (
	"sort"
	"time"
)

type dayBucket struct {
	day     time.Time
	orders  map[string]struct{}
	revenue float64
}

// DailyOrders buckets order lines by calendar day in loc. Each day reports
// its distinct order count and summed price. Days without orders are absent.
func DailyOrders(orders []OrderLine, loc *time.Location) []DailySummary {
	if loc == nil {
		loc = time.UTC
	}

	buckets := make(map[int64]*dayBucket)
	for _, o := range orders {
		day := truncateDay(o.PurchasedAt, loc)
		key := day.Unix()
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{day: day, orders: make(map[string]struct{})}
			buckets[key] = b
		}
		b.orders[o.OrderID] = struct{}{}
		b.revenue += o.Price
	}

	result := make([]DailySummary, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, DailySummary{
			Day:        b.day,
			OrderCount: len(b.orders),
			Revenue:    b.revenue,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day.Before(result[j].Day)
	})
	return result
}
