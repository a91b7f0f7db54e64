package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/analytics"
)

type Storage struct {
	Orders interface {
		ListOrderLines(ctx context.Context, filter OrderFilter) ([]analytics.OrderLine, error)
		GetPurchaseBounds(ctx context.Context) (PurchaseBounds, error)
	}
}

func NewStorage(db *sqlx.DB, loc *time.Location) *Storage {
	if loc == nil {
		loc = time.UTC
	}
	return &Storage{
		Orders: &OrderStore{db: db, loc: loc},
	}
}
