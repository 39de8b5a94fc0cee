package actions

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		datedRecord("2024-01-05T00:00:00Z", "BTC", "Main", 100, 10, 1),
		datedRecord("2024-01-06T00:00:00Z", "BTC", "Cold", 50, -3.5, 2),
		datedRecord("2024-01-07T00:00:00Z", "ETH", "Main", 7, 2, -4),
	}
	schema := Schema{HasInventory: true}
	totals := Summarize(Aggregate(records, schema), schema)
	if !totals.ShortTermGainLoss.Equal(decimal.RequireFromString("8.5")) {
		t.Errorf("ShortTermGainLoss = %s, want 8.5", totals.ShortTermGainLoss)
	}
	if !totals.LongTermGainLoss.Equal(decimal.NewFromInt(-1)) {
		t.Errorf("LongTermGainLoss = %s, want -1", totals.LongTermGainLoss)
	}
}

func TestSummarize_Empty(t *testing.T) {
	totals := Summarize(nil, Schema{})
	if !totals.ShortTermGainLoss.IsZero() || !totals.LongTermGainLoss.IsZero() {
		t.Errorf("empty table should reduce to zero totals: %+v", totals)
	}
}

func TestSummarize_ImpairmentsFollowSchema(t *testing.T) {
	rec := datedRecord("2024-01-05T00:00:00Z", "BTC", "Main", 100, 0, 0)
	rec.ImpairmentExpense = decimal.NewFromInt(7)

	schema := Schema{HasImpairmentExpense: true}
	totals := Summarize(Aggregate([]Record{rec}, schema), schema)
	if !totals.ImpairmentExpense.Equal(decimal.NewFromInt(7)) {
		t.Errorf("ImpairmentExpense = %s, want 7", totals.ImpairmentExpense)
	}
	if !totals.ImpairmentReversal.IsZero() {
		t.Errorf("ImpairmentReversal = %s, want 0 (column absent)", totals.ImpairmentReversal)
	}
}

// Summarizing a whole month equals summing the per-asset summaries: filtering
// partitions the records, and every aggregate is a plain sum per group.
func TestSummarize_AssociativeWithAssetFilter(t *testing.T) {
	jan := NewMonth(2024, time.January)
	list, schema, err := DecodeActions(strings.NewReader(
		"timestamp,status,asset,inventory,shortTermGainLoss,longTermGainLoss,assetBalance\n" +
			"2024-01-05T00:00:00Z,complete,BTC,Main,10,1,100\n" +
			"2024-01-06T00:00:00Z,complete,BTC,Cold,-3.5,2,50\n" +
			"2024-01-07T00:00:00Z,complete,ETH,Main,2,-4,7\n" +
			"2024-01-08T00:00:00Z,complete,ADA,Main,0.25,0,3\n" +
			"2024-02-07T00:00:00Z,complete,ETH,Main,99,99,9\n")) // out of period
	if err != nil {
		t.Fatalf("DecodeActions() error = %v", err)
	}
	ds := Normalize(list, schema, "UTC")

	whole := ds.NewReport(NewSelection(jan)).Totals

	var st, lt decimal.Decimal
	for _, asset := range ds.Assets() {
		part := ds.NewReport(Selection{Month: jan, Asset: asset, Inventory: All}).Totals
		st = st.Add(part.ShortTermGainLoss)
		lt = lt.Add(part.LongTermGainLoss)
	}

	if !st.Equal(whole.ShortTermGainLoss) {
		t.Errorf("sum of per-asset short-term totals = %s, want %s", st, whole.ShortTermGainLoss)
	}
	if !lt.Equal(whole.LongTermGainLoss) {
		t.Errorf("sum of per-asset long-term totals = %s, want %s", lt, whole.LongTermGainLoss)
	}
}
