package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/analytics"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/logger"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/metrics"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/store"
)

const (
	testOrders = `order_id,customer_id,customer_unique_id,customer_state,customer_city,order_purchase_timestamp,price
o1,c1,u1,SP,sao paulo,2018-08-10 10:00:00,100.00
o2,c2,u2,RJ,rio de janeiro,2018-08-05 09:00:00,30.00
o3,c3,u3,RJ,rio de janeiro,broken,30.00
`
	testReference = `id,centroid_latitude,centroid_longitude
SP,-22.26,-48.73
RJ,-22.19,-42.65
`
	testGeoJSON = `{"type":"FeatureCollection","features":[
{"type":"Feature","id":"SP","properties":{"name":"São Paulo"},"geometry":{"type":"Point","coordinates":[-48.7,-22.3]}}
]}`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderCSV(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Source:      SourceCSV,
		OrdersCSV:   writeFile(t, dir, "orders.csv", testOrders),
		GeoCSV:      writeFile(t, dir, "states.csv", testReference),
		GeoJSONPath: writeFile(t, dir, "brazil.geojson", testGeoJSON),
		Location:    time.UTC,
	}
	collector := metrics.NewCollector("test", prometheus.NewRegistry())

	snap, err := NewLoader(cfg, nil, logger.New(io.Discard, logger.LevelDebug), collector).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if snap.Dataset.Len() != 2 {
		t.Errorf("orders = %d, want 2", snap.Dataset.Len())
	}
	if name, ok := snap.Names.Lookup("SP"); !ok || name != "São Paulo" {
		t.Errorf("SP name = %q, %v", name, ok)
	}
	if _, ok := snap.Names.Lookup("RJ"); ok {
		t.Error("RJ has no feature and should have no name")
	}
	if len(snap.References["SP"].Geometry) == 0 {
		t.Error("SP reference should carry the boundary geometry")
	}
	if ref, ok := snap.References.Lookup("RJ"); !ok || ref.Geometry != nil {
		t.Errorf("RJ reference = %+v, %v", ref, ok)
	}

	if got := testutil.ToFloat64(collector.IngestedRowsTotal.WithLabelValues("skipped")); got != 1 {
		t.Errorf("skipped rows metric = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.DatasetRows); got != 2 {
		t.Errorf("dataset rows gauge = %v, want 2", got)
	}
}

func TestLoaderWithoutGeography(t *testing.T) {
	cfg := Config{OrdersCSV: writeFile(t, t.TempDir(), "orders.csv", testOrders)}

	snap, err := NewLoader(cfg, nil, logger.New(io.Discard, logger.LevelInfo), nil).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Names) != 0 || len(snap.References) != 0 {
		t.Errorf("expected empty geography, got %d names and %d references", len(snap.Names), len(snap.References))
	}
	if snap.Dataset.Location != time.UTC {
		t.Errorf("default location = %v", snap.Dataset.Location)
	}
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	orders := writeFile(t, dir, "orders.csv", testOrders)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown source", Config{Source: "s3", OrdersCSV: orders}},
		{"postgres without storage", Config{Source: SourcePostgres}},
		{"missing orders file", Config{OrdersCSV: filepath.Join(dir, "missing.csv")}},
		{"missing boundary file", Config{OrdersCSV: orders, GeoJSONPath: filepath.Join(dir, "missing.geojson")}},
		{"missing reference file", Config{OrdersCSV: orders, GeoCSV: filepath.Join(dir, "missing.csv")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(tt.cfg, nil, logger.New(io.Discard, logger.LevelInfo), nil)
			if _, err := l.Load(context.Background()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

type fakeOrders struct {
	orders []analytics.OrderLine
	bounds store.PurchaseBounds
	err    error
}

func (f *fakeOrders) ListOrderLines(ctx context.Context, filter store.OrderFilter) ([]analytics.OrderLine, error) {
	return f.orders, f.err
}

func (f *fakeOrders) GetPurchaseBounds(ctx context.Context) (store.PurchaseBounds, error) {
	return f.bounds, f.err
}

func TestLoaderPostgres(t *testing.T) {
	first := time.Date(2018, 8, 5, 9, 0, 0, 0, time.UTC)
	last := time.Date(2018, 8, 10, 10, 0, 0, 0, time.UTC)
	fake := &fakeOrders{
		orders: []analytics.OrderLine{
			{OrderID: "o1", CustomerID: "c1", CustomerUniqueID: "u1", CustomerState: "SP", PurchasedAt: last, Price: 100},
			{OrderID: "o2", CustomerID: "c2", CustomerUniqueID: "u2", CustomerState: "RJ", PurchasedAt: first, Price: 30},
		},
		bounds: store.PurchaseBounds{
			MinPurchase: sql.NullTime{Time: first, Valid: true},
			MaxPurchase: sql.NullTime{Time: last, Valid: true},
		},
	}

	l := NewLoader(Config{Source: SourcePostgres}, &store.Storage{Orders: fake}, logger.New(io.Discard, logger.LevelInfo), nil)
	snap, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Dataset.Len() != 2 {
		t.Errorf("orders = %d, want 2", snap.Dataset.Len())
	}
}

func TestLoaderPostgresEmptyTable(t *testing.T) {
	l := NewLoader(Config{Source: SourcePostgres}, &store.Storage{Orders: &fakeOrders{}}, logger.New(io.Discard, logger.LevelInfo), nil)
	snap, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Dataset.Len() != 0 {
		t.Errorf("orders = %d, want 0", snap.Dataset.Len())
	}
}

func TestLoaderPostgresError(t *testing.T) {
	fake := &fakeOrders{err: errors.New("connection refused")}
	l := NewLoader(Config{Source: SourcePostgres}, &store.Storage{Orders: fake}, logger.New(io.Discard, logger.LevelInfo), nil)
	if _, err := l.Load(context.Background()); err == nil {
		t.Error("expected the storage error to surface")
	}
}
