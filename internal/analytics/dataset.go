package analytics

import "time"

// Dataset is an immutable snapshot of order lines. Timestamps are expected
// to share one location, the one passed as Location.
type Dataset struct {
	Orders   []OrderLine
	Location *time.Location
}

func NewDataset(orders []OrderLine, loc *time.Location) Dataset {
	if loc == nil {
		loc = time.UTC
	}
	return Dataset{Orders: orders, Location: loc}
}

func (d Dataset) Len() int {
	return len(d.Orders)
}

func (d Dataset) location() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

// Bounds returns the earliest and latest purchase timestamps. ok is false
// for an empty dataset.
func (d Dataset) Bounds() (min, max time.Time, ok bool) {
	if len(d.Orders) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = d.Orders[0].PurchasedAt, d.Orders[0].PurchasedAt
	for _, o := range d.Orders[1:] {
		if o.PurchasedAt.Before(min) {
			min = o.PurchasedAt
		}
		if o.PurchasedAt.After(max) {
			max = o.PurchasedAt
		}
	}
	return min, max, true
}

/*
Between returns the orders purchased on any calendar day from start to end,
both days included. Only the date part of start and end is used. The
receiver is left untouched; the result shares no slice with it.
*/
func (d Dataset) Between(start, end time.Time) Dataset {
	loc := d.location()
	from := truncateDay(start, loc)
	until := truncateDay(end, loc).AddDate(0, 0, 1)

	filtered := make([]OrderLine, 0, len(d.Orders))
	for _, o := range d.Orders {
		if o.PurchasedAt.Before(from) || !o.PurchasedAt.Before(until) {
			continue
		}
		filtered = append(filtered, o)
	}
	return Dataset{Orders: filtered, Location: loc}
}

func truncateDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
