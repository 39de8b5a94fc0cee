package actions

import (
	"testing"
	"time"
)

func record(month Month, asset, inventory string) Record {
	return Record{
		Action: Action{Status: StatusComplete, Asset: asset, Inventory: inventory},
		Month:  month,
	}
}

func TestFilter(t *testing.T) {
	jan := NewMonth(2024, time.January)
	feb := NewMonth(2024, time.February)
	records := []Record{
		record(jan, "BTC", "Main"),
		record(jan, "BTC", "Cold"),
		record(jan, "ETH", "Main"),
		record(feb, "BTC", "Main"),
		record(Month{}, "BTC", "Main"), // no derived month
	}

	tests := []struct {
		name string
		sel  Selection
		want int
	}{
		{"month only", NewSelection(jan), 3},
		{"month and asset", Selection{Month: jan, Asset: "BTC", Inventory: All}, 2},
		{"month asset inventory", Selection{Month: jan, Asset: "BTC", Inventory: "Cold"}, 1},
		{"other month", NewSelection(feb), 1},
		{"no match", Selection{Month: jan, Asset: "XRP", Inventory: All}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.sel)
			if len(got) != tt.want {
				t.Errorf("Filter() kept %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFilter_ExcludesRecordsWithoutMonth(t *testing.T) {
	records := []Record{record(Month{}, "BTC", "Main")}
	if got := Filter(records, NewSelection(NewMonth(2024, time.January))); len(got) != 0 {
		t.Errorf("records without a month must never match, got %d", len(got))
	}
	// Even a zero-month selection must not surface them.
	if got := Filter(records, Selection{Asset: All, Inventory: All}); len(got) != 0 {
		t.Errorf("zero selection must not match monthless records, got %d", len(got))
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	jan := NewMonth(2024, time.January)
	records := []Record{
		record(jan, "ETH", "Main"),
		record(jan, "BTC", "Main"),
		record(jan, "ADA", "Main"),
	}
	got := Filter(records, NewSelection(jan))
	for i, want := range []string{"ETH", "BTC", "ADA"} {
		if got[i].Asset != want {
			t.Fatalf("Filter() reordered records: %+v", got)
		}
	}
}
