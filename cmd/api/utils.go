package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/analytics"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/ingest"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/response"
)

var errInvertedWindow = errors.New("start_date is after end_date")

type window struct {
	start time.Time
	end   time.Time
}

func (w window) payload() response.Window {
	if w.start.IsZero() && w.end.IsZero() {
		return response.Window{}
	}
	return response.Window{
		StartDate: w.start.Format(time.DateOnly),
		EndDate:   w.end.Format(time.DateOnly),
	}
}

/*
parseWindow reads start_date and end_date (YYYY-MM-DD). A missing side
defaults to the first or last purchase day of the loaded snapshot.
*/
func parseWindow(r *http.Request, ds analytics.Dataset, loc *time.Location) (window, error) {
	minDate, maxDate, _ := ds.Bounds()

	start, err := ingest.ParseDateOr(r.URL.Query().Get("start_date"), minDate, loc)
	if err != nil {
		return window{}, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := ingest.ParseDateOr(r.URL.Query().Get("end_date"), maxDate, loc)
	if err != nil {
		return window{}, fmt.Errorf("invalid end_date: %w", err)
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return window{}, errInvertedWindow
	}
	return window{start: start, end: end}, nil
}
