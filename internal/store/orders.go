package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/analytics"
)

type OrderStore struct {
	db  *sqlx.DB
	loc *time.Location
}

/*
ListOrderLines loads order lines whose purchase day falls inside the
filter. Rows without a price are left out so they never reach the
aggregators.
*/
func (s *OrderStore) ListOrderLines(ctx context.Context, filter OrderFilter) ([]analytics.OrderLine, error) {
	query, args := buildOrderLinesQuery(filter)

	rows := []OrderLineRow{}
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}

	orders := make([]analytics.OrderLine, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, r.ToOrderLine(s.loc))
	}
	return orders, nil
}

func (s *OrderStore) GetPurchaseBounds(ctx context.Context) (PurchaseBounds, error) {
	query := `
	SELECT
		MIN(order_purchase_timestamp) AS min_purchase,
		MAX(order_purchase_timestamp) AS max_purchase
	FROM
		order_lines
	WHERE
		price IS NOT NULL;
	`
	var bounds PurchaseBounds
	if err := s.db.GetContext(ctx, &bounds, query); err != nil {
		return PurchaseBounds{}, fmt.Errorf("failed to query purchase bounds: %w", err)
	}
	return bounds, nil
}

func buildOrderLinesQuery(filter OrderFilter) (string, []any) {
	var (
		conditions = []string{"price IS NOT NULL"}
		args       []any
	)
	if !filter.StartDate.IsZero() {
		args = append(args, dayStart(filter.StartDate))
		conditions = append(conditions, fmt.Sprintf("order_purchase_timestamp >= $%d", len(args)))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, dayStart(filter.EndDate).AddDate(0, 0, 1))
		conditions = append(conditions, fmt.Sprintf("order_purchase_timestamp < $%d", len(args)))
	}

	query := `
	SELECT
		order_id,
		customer_id,
		customer_unique_id,
		customer_state,
		customer_city,
		order_purchase_timestamp,
		price
	FROM
		order_lines
	WHERE
		` + strings.Join(conditions, "\n\t\tAND ") + `
	ORDER BY
		order_purchase_timestamp;
	`
	return query, args
}

// dayStart drops the clock and zone so the bound matches the stored wall clock.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
