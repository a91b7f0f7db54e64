package geo

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadReferenceCSV(t *testing.T) {
	input := strings.Join([]string{
		"id,name,centroid_latitude,centroid_longitude",
		"SP,São Paulo,-22.26,-48.73",
		"RJ,Rio de Janeiro,-22.19,-42.65",
		"MG,Minas Gerais,not-a-number,-44.67",
		",Nowhere,-1.0,-1.0",
	}, "\n")

	table, skipped, err := LoadReferenceCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadReferenceCSV: %v", err)
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if len(table) != 2 {
		t.Fatalf("rows = %d, want 2", len(table))
	}

	sp, ok := table.Lookup("SP")
	if !ok {
		t.Fatal("missing SP")
	}
	if sp.CentroidLatitude != -22.26 || sp.CentroidLongitude != -48.73 {
		t.Errorf("SP = %+v", sp)
	}
	if _, ok := table.Lookup("MG"); ok {
		t.Error("row with a bad coordinate should be skipped")
	}
}

func TestLoadReferenceCSV_MissingColumn(t *testing.T) {
	input := "id,centroid_latitude\nSP,-22.26\n"

	_, _, err := LoadReferenceCSV(strings.NewReader(input))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("err = %v, want ErrMissingColumn", err)
	}
}

func TestLoadReferenceFile_Missing(t *testing.T) {
	if _, _, err := LoadReferenceFile("does-not-exist.csv"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
