package actions

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Key identifies one aggregate group: every distinct (month, asset,
// inventory) combination present in the records in view yields exactly one
// Row.
type Key struct {
	Month     Month
	Asset     string
	Inventory string
}

// Compare orders keys by month, then asset, then inventory.
func (k Key) Compare(x Key) int {
	if c := k.Month.Compare(x.Month); c != 0 {
		return c
	}
	if c := strings.Compare(k.Asset, x.Asset); c != 0 {
		return c
	}
	return strings.Compare(k.Inventory, x.Inventory)
}

// Row is one line of the combined aggregate table.
//
// EndingBalance is the assetBalance of the chronologically last record in the
// group. HasBalance is false when no record in the group carried a usable
// instant: the gain/loss figures still appear, joined against an absent
// balance.
type Row struct {
	Key

	EndingBalance decimal.Decimal
	HasBalance    bool

	ShortTermGainLoss decimal.Decimal
	LongTermGainLoss  decimal.Decimal

	// Only summed when the schema carries the columns; zero otherwise.
	ImpairmentExpense  decimal.Decimal
	ImpairmentReversal decimal.Decimal
}

// Aggregate groups records by (month, asset, inventory) and computes, per
// group, the sum of the gain/loss columns and the ending balance.
//
// The balance sub-result is a stable ascending sort by instant: the last
// record of the group wins, and records sharing the exact same instant keep
// their input order, so the later row in the file is the ending balance.
// Records without an instant are excluded from the balance computation, and
// records without a month belong to no group at all.
//
// The gain/loss sub-result is left-joined onto the balances: every gain/loss
// group appears in the output even when no balance matched. Impairment
// columns are summed only when the schema carries them.
//
// The output is sorted by group key, so a given input always aggregates to
// the same table.
func Aggregate(records []Record, schema Schema) []Row {
	groups := make(map[Key]*Row)
	var keys []Key
	for _, r := range records {
		if r.Month.IsZero() {
			continue
		}
		k := Key{Month: r.Month, Asset: r.Asset, Inventory: r.Inventory}
		row, ok := groups[k]
		if !ok {
			row = &Row{Key: k}
			groups[k] = row
			keys = append(keys, k)
		}
		row.ShortTermGainLoss = row.ShortTermGainLoss.Add(r.ShortTermGainLoss)
		row.LongTermGainLoss = row.LongTermGainLoss.Add(r.LongTermGainLoss)
		if schema.HasImpairmentExpense {
			row.ImpairmentExpense = row.ImpairmentExpense.Add(r.ImpairmentExpense)
		}
		if schema.HasImpairmentReversal {
			row.ImpairmentReversal = row.ImpairmentReversal.Add(r.ImpairmentReversal)
		}
	}

	for k, balance := range endingBalances(records) {
		if row, ok := groups[k]; ok {
			row.EndingBalance = balance
			row.HasBalance = true
		}
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })
	out := make([]Row, 0, len(keys))
	for _, k := range keys {
		out = append(out, *groups[k])
	}
	return out
}

// endingBalances returns, per group, the assetBalance of the chronologically
// last record holding an instant.
func endingBalances(records []Record) map[Key]decimal.Decimal {
	dated := make([]Record, 0, len(records))
	for _, r := range records {
		if r.HasInstant() && !r.Month.IsZero() {
			dated = append(dated, r)
		}
	}
	// Stable: input order breaks ties between equal instants.
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].Instant.Before(dated[j].Instant)
	})

	balances := make(map[Key]decimal.Decimal, len(dated))
	for _, r := range dated {
		balances[Key{Month: r.Month, Asset: r.Asset, Inventory: r.Inventory}] = r.AssetBalance
	}
	return balances
}
