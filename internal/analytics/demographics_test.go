package analytics

import "testing"

func TestCustomersByState(t *testing.T) {
	tests := []struct {
		name   string
		orders []OrderLine
		want   map[string]int
	}{
		{
			name:   "example",
			orders: exampleOrders(),
			want:   map[string]int{"SP": 1, "RJ": 1},
		},
		{
			name:   "distinct customer ids per state",
			orders: multiLineOrders(),
			want:   map[string]int{"SP": 3, "MG": 1, "XX": 1},
		},
		{
			name:   "empty",
			orders: nil,
			want:   map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CustomersByState(tt.orders)
			if got == nil {
				t.Fatal("got nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d states, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, row := range got {
				if row.CustomerCount != tt.want[row.State] {
					t.Errorf("%s = %d, want %d", row.State, row.CustomerCount, tt.want[row.State])
				}
				if i > 0 && got[i-1].State >= row.State {
					t.Errorf("states not ordered: %s before %s", got[i-1].State, row.State)
				}
			}
		})
	}
}

func TestSortByCustomerCount(t *testing.T) {
	rows := []StateDemographic{{"AC", 1}, {"SP", 9}, {"MG", 4}}
	got := SortByCustomerCount(rows)

	if got[0].State != "SP" || got[1].State != "MG" || got[2].State != "AC" {
		t.Errorf("unexpected order %+v", got)
	}
	if rows[0].State != "AC" {
		t.Error("input slice was reordered")
	}
}
