package actions

import (
	"slices"
	"testing"
	"time"
)

func TestDatasetDomains(t *testing.T) {
	ds := Normalize([]Action{
		completeAction("2024-02-05T00:00:00Z", "ETH", "Main"),
		completeAction("2024-01-05T00:00:00Z", "BTC", "Cold"),
		completeAction("2024-01-06T00:00:00Z", "BTC", "Main"),
		completeAction("not-a-timestamp", "ADA", "Main"),
	}, Schema{HasInventory: true}, "UTC")

	months := ds.Months()
	wantMonths := []Month{NewMonth(2024, time.January), NewMonth(2024, time.February)}
	if !slices.Equal(months, wantMonths) {
		t.Errorf("Months() = %v, want %v", months, wantMonths)
	}

	// ADA still appears: only its month is unknown, not the asset itself.
	if got := ds.Assets(); !slices.Equal(got, []string{"ADA", "BTC", "ETH"}) {
		t.Errorf("Assets() = %v", got)
	}
	if got := ds.Inventories(); !slices.Equal(got, []string{"Cold", "Main"}) {
		t.Errorf("Inventories() = %v", got)
	}
}

func TestDatasetDomains_UnspecifiedInventory(t *testing.T) {
	ds := Normalize([]Action{
		completeAction("2024-01-05T00:00:00Z", "BTC", ""),
	}, Schema{}, "UTC")
	if got := ds.Inventories(); !slices.Equal(got, []string{Unspecified}) {
		t.Errorf("Inventories() = %v, want [%s]", got, Unspecified)
	}
}
