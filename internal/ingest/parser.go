package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseTimestamp reads a purchase timestamp. Layouts without an offset are
// interpreted in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "NaN" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

/*
ParsePrice accepts both "1234.56" and the Brazilian "1.234,56" notation.
A comma marks the Brazilian form: dots are then thousands separators.
*/
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "NaN" {
		return 0, fmt.Errorf("empty price")
	}
	clean := s
	if strings.Contains(s, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}
	val, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if val < 0 {
		return 0, fmt.Errorf("negative price %q", s)
	}
	return val, nil
}

// ParseDateOr is ParseDate with fallback returned for an empty s, so a
// missing window side defaults the same way everywhere.
func ParseDateOr(s string, fallback time.Time, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return ParseDate(s, loc)
}

// ParseDate reads a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc)
}
