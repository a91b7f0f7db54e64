package main

import (
	"net/http"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/analytics"
)

type boundsResponse struct {
	MinDate string `json:"min_date,omitempty"`
	MaxDate string `json:"max_date,omitempty"`
	Orders  int    `json:"orders"`
}

// filteredOrders resolves the request window and cuts the snapshot to it.
// On failure the error response has already been written.
func (app *application) filteredOrders(w http.ResponseWriter, r *http.Request) (window, []analytics.OrderLine, bool) {
	const component = "ReportHandler"

	win, err := parseWindow(r, app.snapshot.Dataset, app.reporter.Location())
	if err != nil {
		app.appLogger.Debug(component, "Rejected window: path=%s err=%v", r.URL.Path, err)
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return window{}, nil, false
	}
	return win, app.snapshot.Dataset.Between(win.start, win.end).Orders, true
}

// @Summary		Purchase date bounds
// @Description	returns the first and last purchase day of the loaded snapshot
// @Tags			Report
// @Produce		json
// @Router			/bounds [get]
func (app *application) handleGetBounds(w http.ResponseWriter, r *http.Request) {
	resp := boundsResponse{Orders: app.snapshot.Dataset.Len()}
	if minDate, maxDate, ok := app.snapshot.Dataset.Bounds(); ok {
		resp.MinDate = minDate.Format("2006-01-02")
		resp.MaxDate = maxDate.Format("2006-01-02")
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		Full report
// @Description	daily orders, customers by state, RFM tables and KPIs for a date range
// @Tags			Report
// @Param			start_date	query	string	false	"YYYY-MM-DD"
// @Param			end_date	query	string	false	"YYYY-MM-DD"
// @Produce		json
// @Router			/report [get]
func (app *application) handleGetReport(w http.ResponseWriter, r *http.Request) {
	win, orders, ok := app.filteredOrders(w, r)
	if !ok {
		return
	}
	writeReport(w, win, app.reporter.Build(orders), "Successfully built report")
}

func (app *application) handleGetDailyOrders(w http.ResponseWriter, r *http.Request) {
	win, orders, ok := app.filteredOrders(w, r)
	if !ok {
		return
	}
	app.metrics.RecordReport("daily", len(orders))
	writeReport(w, win, app.reporter.Daily(orders), "Successfully built daily orders")
}

func (app *application) handleGetDemographics(w http.ResponseWriter, r *http.Request) {
	win, orders, ok := app.filteredOrders(w, r)
	if !ok {
		return
	}
	app.metrics.RecordReport("demographics", len(orders))
	table := analytics.SortByCustomerCount(app.reporter.Demographics(orders))
	writeReport(w, win, table, "Successfully built customer demographics")
}

func (app *application) handleGetCustomerRFM(w http.ResponseWriter, r *http.Request) {
	win, orders, ok := app.filteredOrders(w, r)
	if !ok {
		return
	}
	app.metrics.RecordReport("rfm_customers", len(orders))
	writeReport(w, win, app.reporter.RFM(orders).Customers, "Successfully built customer RFM")
}

func (app *application) handleGetStateRFM(w http.ResponseWriter, r *http.Request) {
	win, orders, ok := app.filteredOrders(w, r)
	if !ok {
		return
	}
	app.metrics.RecordReport("rfm_states", len(orders))
	writeReport(w, win, app.reporter.RFM(orders).States, "Successfully built state RFM")
}

func (app *application) handleGetStateRFMMap(w http.ResponseWriter, r *http.Request) {
	win, orders, ok := app.filteredOrders(w, r)
	if !ok {
		return
	}
	app.metrics.RecordReport("rfm_map", len(orders))
	writeReport(w, win, app.reporter.RFM(orders).StatesWithGeo, "Successfully built state RFM map")
}
