package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/analytics"
)

// orderColumns holds the raw records of every required column.
type orderColumns map[string][]string

func columnsOf(df dataframe.DataFrame) orderColumns {
	cols := make(orderColumns, len(analytics.OrderColumns))
	for _, name := range analytics.OrderColumns {
		cols[name] = df.Col(name).Records()
	}
	return cols
}

func (c orderColumns) str(name string, rowIdx int) string {
	v := strings.TrimSpace(c[name][rowIdx])
	if v == "NaN" {
		return ""
	}
	return v
}

// RowToOrderLine converts one dataframe row. A row with a bad timestamp,
// a bad price or no order id is rejected.
func (c orderColumns) RowToOrderLine(rowIdx int, loc *time.Location) (analytics.OrderLine, error) {
	orderID := c.str(analytics.ColOrderID, rowIdx)
	if orderID == "" {
		return analytics.OrderLine{}, fmt.Errorf("row %d: missing %s", rowIdx, analytics.ColOrderID)
	}
	purchasedAt, err := ParseTimestamp(c.str(analytics.ColPurchasedAt, rowIdx), loc)
	if err != nil {
		return analytics.OrderLine{}, fmt.Errorf("row %d: %w", rowIdx, err)
	}
	price, err := ParsePrice(c.str(analytics.ColPrice, rowIdx))
	if err != nil {
		return analytics.OrderLine{}, fmt.Errorf("row %d: %w", rowIdx, err)
	}

	return analytics.OrderLine{
		OrderID:          orderID,
		CustomerID:       c.str(analytics.ColCustomerID, rowIdx),
		CustomerUniqueID: c.str(analytics.ColCustomerUniqueID, rowIdx),
		CustomerState:    c.str(analytics.ColCustomerState, rowIdx),
		CustomerCity:     c.str(analytics.ColCustomerCity, rowIdx),
		PurchasedAt:      purchasedAt,
		Price:            price,
	}, nil
}
