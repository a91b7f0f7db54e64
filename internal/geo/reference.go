package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	ColID                = "id"
	ColCentroidLatitude  = "centroid_latitude"
	ColCentroidLongitude = "centroid_longitude"
)

var ErrMissingColumn = errors.New("reference table is missing a required column")

// Reference is one row of the geographic reference table.
type Reference struct {
	ID                string          `json:"id"`
	CentroidLatitude  float64         `json:"centroid_latitude"`
	CentroidLongitude float64         `json:"centroid_longitude"`
	Geometry          json.RawMessage `json:"geometry,omitempty"`
}

// Table indexes reference rows by state code.
type Table map[string]Reference

func (t Table) Lookup(id string) (Reference, bool) {
	ref, ok := t[id]
	return ref, ok
}

/*
LoadReferenceCSV reads the centroid table. Every column is read as a string
so a single bad coordinate only drops its own row instead of changing the
inferred type of the whole column. Extra columns are ignored.
*/
func LoadReferenceCSV(r io.Reader) (Table, int, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithTypes(map[string]series.Type{
			ColID:                series.String,
			ColCentroidLatitude:  series.String,
			ColCentroidLongitude: series.String,
		}),
		dataframe.WithLazyQuotes(true),
	)
	if df.Error() != nil {
		return nil, 0, fmt.Errorf("failed to read reference table: %w", df.Error())
	}

	names := df.Names()
	for _, col := range []string{ColID, ColCentroidLatitude, ColCentroidLongitude} {
		if !contains(names, col) {
			return nil, 0, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	ids := df.Col(ColID).Records()
	lats := df.Col(ColCentroidLatitude).Records()
	lons := df.Col(ColCentroidLongitude).Records()

	table := make(Table, len(ids))
	skipped := 0
	for i, id := range ids {
		id = strings.TrimSpace(id)
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(lats[i]), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(lons[i]), 64)
		if id == "" || id == "NaN" || latErr != nil || lonErr != nil {
			skipped++
			continue
		}
		table[id] = Reference{ID: id, CentroidLatitude: lat, CentroidLongitude: lon}
	}
	return table, skipped, nil
}

func LoadReferenceFile(path string) (Table, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()
	return LoadReferenceCSV(f)
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
