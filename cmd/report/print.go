package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/analytics"
)

func stateLabel(s analytics.StateRFMSummary) string {
	if s.StateName == nil {
		return s.State
	}
	return fmt.Sprintf("%s (%s)", *s.StateName, s.State)
}

// printSummary writes the KPI tiles and the top states by revenue.
func printSummary(w io.Writer, report analytics.Report, top int) error {
	fmt.Fprintf(w, "Total orders:      %d\n", report.KPI.TotalOrders)
	fmt.Fprintf(w, "Total revenue:     %s\n", analytics.FormatCurrency(report.KPI.TotalRevenue))
	fmt.Fprintf(w, "Average recency:   %.1f days\n", report.KPI.AverageRecency)
	fmt.Fprintf(w, "Average frequency: %.1f\n", report.KPI.AverageFrequency)
	fmt.Fprintf(w, "Average monetary:  %s\n\n", analytics.FormatCurrency(report.KPI.AverageMonetary))

	states := analytics.SortByTotalMonetary(report.RFM.States)
	if top >= 0 && top < len(states) {
		states = states[:top]
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tCUSTOMERS\tFREQUENCY\tMONETARY\tSHARE\tMEDIAN RECENCY\tMIN RECENCY")
	for _, s := range states {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%.1f%%\t%.1f\t%d\n",
			stateLabel(s), s.CountCustomer, s.TotalFrequency,
			analytics.FormatCurrency(s.TotalMonetary), s.PercentageMonetary,
			s.MedianRecency, s.MinRecency)
	}
	return tw.Flush()
}

func writeReportFile(path string, report analytics.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file %s: %w", path, err)
	}
	return nil
}
