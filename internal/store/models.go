package store

import (
	"database/sql"
	"time"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/analytics"
)

// OrderLineRow represents one row of the 'order_lines' table.
type OrderLineRow struct {
	OrderID          string          `db:"order_id"`
	CustomerID       string          `db:"customer_id"`
	CustomerUniqueID string          `db:"customer_unique_id"`
	CustomerState    sql.NullString  `db:"customer_state"`
	CustomerCity     sql.NullString  `db:"customer_city"`
	PurchasedAt      time.Time       `db:"order_purchase_timestamp"`
	Price            sql.NullFloat64 `db:"price"`
}

// OrderFilter limits a listing to purchases on the inclusive day range.
// Zero times leave that side open.
type OrderFilter struct {
	StartDate time.Time
	EndDate   time.Time
}

type PurchaseBounds struct {
	MinPurchase sql.NullTime `db:"min_purchase"`
	MaxPurchase sql.NullTime `db:"max_purchase"`
}

// ToOrderLine reads the stored wall clock in loc; the column carries no zone.
func (r OrderLineRow) ToOrderLine(loc *time.Location) analytics.OrderLine {
	return analytics.OrderLine{
		OrderID:          r.OrderID,
		CustomerID:       r.CustomerID,
		CustomerUniqueID: r.CustomerUniqueID,
		CustomerState:    r.CustomerState.String,
		CustomerCity:     r.CustomerCity.String,
		PurchasedAt:      wallClockIn(r.PurchasedAt, loc),
		Price:            r.Price.Float64,
	}
}

func wallClockIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
