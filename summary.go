package actions

import "github.com/shopspring/decimal"

// Totals are the headline metrics of a report: the scalar sum of each numeric
// column across all aggregate rows in view. The impairment totals exist only
// when the source schema carried the columns.
type Totals struct {
	ShortTermGainLoss decimal.Decimal
	LongTermGainLoss  decimal.Decimal

	ImpairmentExpense  decimal.Decimal
	ImpairmentReversal decimal.Decimal
}

// Summarize reduces aggregate rows to scalar totals. Rows without a balance
// contribute their gain/loss figures as usual; an empty table reduces to all
// zeroes.
func Summarize(rows []Row, schema Schema) Totals {
	var t Totals
	t.ShortTermGainLoss = decimal.Zero
	t.LongTermGainLoss = decimal.Zero
	t.ImpairmentExpense = decimal.Zero
	t.ImpairmentReversal = decimal.Zero
	for _, r := range rows {
		t.ShortTermGainLoss = t.ShortTermGainLoss.Add(r.ShortTermGainLoss)
		t.LongTermGainLoss = t.LongTermGainLoss.Add(r.LongTermGainLoss)
		if schema.HasImpairmentExpense {
			t.ImpairmentExpense = t.ImpairmentExpense.Add(r.ImpairmentExpense)
		}
		if schema.HasImpairmentReversal {
			t.ImpairmentReversal = t.ImpairmentReversal.Add(r.ImpairmentReversal)
		}
	}
	return t
}
