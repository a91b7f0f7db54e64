package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/analytics"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/geo"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/ingest"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/logger"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/metrics"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/store"
)

type Source string

const (
	SourceCSV      Source = "csv"
	SourcePostgres Source = "postgres"
)

type Config struct {
	Source      Source
	OrdersCSV   string
	GeoCSV      string
	GeoJSONPath string
	Encoding    ingest.Encoding
	Location    *time.Location
}

// Snapshot is everything a report needs, loaded once.
type Snapshot struct {
	Dataset    analytics.Dataset
	Names      geo.StateNames
	References geo.Table
}

type Loader struct {
	cfg       Config
	storage   *store.Storage
	appLogger *logger.Logger
	metrics   *metrics.Collector
}

// NewLoader builds a loader. storage is only used for the postgres source
// and may be nil otherwise.
func NewLoader(cfg Config, storage *store.Storage, appLogger *logger.Logger, collector *metrics.Collector) *Loader {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Loader{cfg: cfg, storage: storage, appLogger: appLogger, metrics: collector}
}

func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	const component = "SnapshotLoader"
	start := time.Now()

	orders, skipped, err := l.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	l.metrics.RecordIngestion(len(orders), skipped, time.Since(start))

	names, refs, err := l.loadGeography()
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Dataset:    analytics.NewDataset(orders, l.cfg.Location),
		Names:      names,
		References: refs,
	}
	l.appLogger.Info(component, "Snapshot loaded: source=%s orders=%d skipped=%d states=%d references=%d elapsed=%s",
		l.cfg.Source, len(orders), skipped, len(names), len(refs), time.Since(start).Round(time.Millisecond))
	return snap, nil
}

func (l *Loader) loadOrders(ctx context.Context) ([]analytics.OrderLine, int, error) {
	const component = "SnapshotLoader"

	switch l.cfg.Source {
	case SourceCSV, "":
		res, err := ingest.ReadOrdersFile(l.cfg.OrdersCSV, ingest.Options{
			Encoding: l.cfg.Encoding,
			Location: l.cfg.Location,
		}, l.appLogger)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load orders csv: %w", err)
		}
		return res.Orders, res.Skipped, nil
	case SourcePostgres:
		if l.storage == nil {
			return nil, 0, fmt.Errorf("postgres source selected without a storage")
		}
		bounds, err := l.storage.Orders.GetPurchaseBounds(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load purchase bounds: %w", err)
		}
		if !bounds.MinPurchase.Valid {
			l.appLogger.Warn(component, "Database holds no priced order lines")
			return []analytics.OrderLine{}, 0, nil
		}
		l.appLogger.Info(component, "Loading orders from database: first=%s last=%s",
			bounds.MinPurchase.Time.Format(time.DateOnly), bounds.MaxPurchase.Time.Format(time.DateOnly))

		orders, err := l.storage.Orders.ListOrderLines(ctx, store.OrderFilter{})
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load orders from database: %w", err)
		}
		return orders, 0, nil
	default:
		return nil, 0, fmt.Errorf("unknown data source %q", l.cfg.Source)
	}
}

/*
loadGeography reads the boundary document and the centroid table. Either
path may be empty: reports then carry no state names or no coordinates,
which the aggregators treat as unmatched lookups.
*/
func (l *Loader) loadGeography() (geo.StateNames, geo.Table, error) {
	const component = "GeoLoader"

	var boundaries *geo.Boundaries
	if l.cfg.GeoJSONPath == "" {
		l.appLogger.Warn(component, "No boundary document configured, state names will be empty")
	} else {
		b, err := geo.LoadBoundariesFile(l.cfg.GeoJSONPath)
		if err != nil {
			return nil, nil, err
		}
		if b.Skipped > 0 {
			l.appLogger.Warn(component, "Boundary features skipped: count=%d", b.Skipped)
		}
		boundaries = b
	}

	refs := geo.Table{}
	if l.cfg.GeoCSV == "" {
		l.appLogger.Warn(component, "No reference table configured, centroids will be empty")
	} else {
		t, skipped, err := geo.LoadReferenceFile(l.cfg.GeoCSV)
		if err != nil {
			return nil, nil, err
		}
		if skipped > 0 {
			l.appLogger.Warn(component, "Reference rows skipped: count=%d", skipped)
		}
		refs = t
	}

	if boundaries == nil {
		return geo.StateNames{}, refs, nil
	}
	return boundaries.Names(), boundaries.Attach(refs), nil
}
