package analytics

import (
	"reflect"
	"testing"
	"time"
)

func TestDatasetBounds(t *testing.T) {
	ds := NewDataset(multiLineOrders(), nil)

	min, max, ok := ds.Bounds()
	if !ok {
		t.Fatal("expected bounds for a non-empty dataset")
	}
	if !min.Equal(at(2017, 12, 30, 6, 0)) || !max.Equal(at(2018, 1, 4, 0, 1)) {
		t.Errorf("bounds = %v..%v", min, max)
	}

	if _, _, ok := NewDataset(nil, nil).Bounds(); ok {
		t.Error("empty dataset should report no bounds")
	}
}

func TestDatasetBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       []string
	}{
		{"whole range", at(2017, 12, 30, 0, 0), at(2018, 1, 4, 0, 0), []string{"A", "A", "B", "C", "D", "D", "E"}},
		{"end day is inclusive", at(2018, 1, 1, 0, 0), at(2018, 1, 3, 0, 0), []string{"A", "A", "B", "C"}},
		{"time of day is ignored", at(2018, 1, 3, 23, 0), at(2018, 1, 3, 1, 0), []string{"B", "C"}},
		{"single day", at(2018, 1, 4, 12, 0), at(2018, 1, 4, 12, 0), []string{"D", "D"}},
		{"no orders in range", at(2019, 1, 1, 0, 0), at(2019, 2, 1, 0, 0), []string{}},
		{"inverted", at(2018, 1, 4, 0, 0), at(2018, 1, 1, 0, 0), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := NewDataset(multiLineOrders(), time.UTC)
			got := ds.Between(tt.start, tt.end)

			ids := make([]string, 0, got.Len())
			for _, o := range got.Orders {
				ids = append(ids, o.OrderID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("ids = %v, want %v", ids, tt.want)
			}
			if got.Location != time.UTC {
				t.Errorf("location = %v", got.Location)
			}
		})
	}
}

func TestDatasetBetweenLeavesReceiverUntouched(t *testing.T) {
	ds := NewDataset(multiLineOrders(), time.UTC)
	filtered := ds.Between(at(2018, 1, 1, 0, 0), at(2018, 1, 1, 0, 0))

	if len(filtered.Orders) == 0 {
		t.Fatal("expected orders on 2018-01-01")
	}
	filtered.Orders[0].Price = 999

	if !reflect.DeepEqual(ds.Orders, multiLineOrders()) {
		t.Error("filtering changed the source dataset")
	}
}

func TestDatasetBetweenUsesDatasetLocation(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	// 2018-01-02 01:30 UTC is still 2018-01-01 in BRT.
	ds := NewDataset([]OrderLine{line("A", "c", "u", "SP", "x", at(2018, 1, 2, 1, 30), 1)}, brt)

	got := ds.Between(time.Date(2018, 1, 1, 0, 0, 0, 0, brt), time.Date(2018, 1, 1, 0, 0, 0, 0, brt))
	if got.Len() != 1 {
		t.Errorf("got %d orders, want 1", got.Len())
	}
}
