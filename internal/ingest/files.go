package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/analytics"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/logger"
)

var (
	ErrEmptyFrame    = errors.New("dataframe is empty")
	ErrMissingColumn = errors.New("orders table is missing a required column")
)

type Options struct {
	Delimiter rune
	Encoding  Encoding
	Location  *time.Location
}

func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.Encoding == "" {
		o.Encoding = EncodingUTF8
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	return o
}

type Result struct {
	Orders  []analytics.OrderLine
	Skipped int
}

/*
ReadOrders decodes a CSV orders table into typed order lines. Required
columns are forced to string so that ids keep leading zeros and prices are
parsed by ParsePrice. Rows that fail to convert are counted in
Result.Skipped and logged; they never abort the load.
*/
func ReadOrders(r io.Reader, opts Options, appLogger *logger.Logger) (Result, error) {
	const component = "OrderReader"
	opts = opts.withDefaults()

	types := make(map[string]series.Type, len(analytics.OrderColumns))
	for _, col := range analytics.OrderColumns {
		types[col] = series.String
	}

	df := dataframe.ReadCSV(decode(r, opts.Encoding),
		dataframe.WithDelimiter(opts.Delimiter),
		dataframe.WithLazyQuotes(true),
		dataframe.WithTypes(types),
	)
	if df.Error() != nil {
		return Result{}, fmt.Errorf("failed to read orders table: %w", df.Error())
	}
	if df.Nrow() == 0 {
		return Result{}, ErrEmptyFrame
	}

	names := df.Names()
	for _, col := range analytics.OrderColumns {
		if !containsString(names, col) {
			return Result{}, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	cols := columnsOf(df)
	result := Result{Orders: make([]analytics.OrderLine, 0, df.Nrow())}
	for i := 0; i < df.Nrow(); i++ {
		order, err := cols.RowToOrderLine(i, opts.Location)
		if err != nil {
			result.Skipped++
			appLogger.Debug(component, "Skipping malformed row: %v", err)
			continue
		}
		result.Orders = append(result.Orders, order)
	}

	if result.Skipped > 0 {
		appLogger.Warn(component, "Malformed rows skipped: skipped=%d accepted=%d", result.Skipped, len(result.Orders))
	}
	appLogger.Info(component, "Orders table read: rows=%d accepted=%d", df.Nrow(), len(result.Orders))
	return result, nil
}

func ReadOrdersFile(path string, opts Options, appLogger *logger.Logger) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	return ReadOrders(file, opts, appLogger)
}

func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
