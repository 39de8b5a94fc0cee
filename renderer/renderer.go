// Package renderer turns computed reports into markdown, the display format
// of the mas command line tool.
package renderer

import (
	"fmt"
	"strings"

	"github.com/xcoulter/actions"
)

// ReportMarkdown renders a monthly summary report. Amounts are formatted in
// the given display currency; ending balances are asset quantities and stay
// plain decimals.
func ReportMarkdown(report *actions.Report, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Monthly Actions Summary — %s\n\n", report.Selection.Month)
	if report.Selection.Asset != actions.All && report.Selection.Asset != "" {
		fmt.Fprintf(&b, "Asset: %s\n\n", report.Selection.Asset)
	}
	if report.Selection.Inventory != actions.All && report.Selection.Inventory != "" {
		fmt.Fprintf(&b, "Inventory: %s\n\n", report.Selection.Inventory)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(&b, "> ⚠️ %s\n\n", w)
	}

	if len(report.Rows) == 0 {
		fmt.Fprintln(&b, "No completed actions match this selection.")
		return b.String()
	}

	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| Metric | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Short-Term Gain/Loss | %s |\n",
		actions.NewMoney(report.Totals.ShortTermGainLoss, currency).SignedString())
	fmt.Fprintf(&b, "| Long-Term Gain/Loss | %s |\n",
		actions.NewMoney(report.Totals.LongTermGainLoss, currency).SignedString())
	if report.Schema.HasImpairmentExpense {
		fmt.Fprintf(&b, "| Impairment Expense | %s |\n",
			actions.NewMoney(report.Totals.ImpairmentExpense, currency).SignedString())
	}
	if report.Schema.HasImpairmentReversal {
		fmt.Fprintf(&b, "| Impairment Reversal | %s |\n",
			actions.NewMoney(report.Totals.ImpairmentReversal, currency).SignedString())
	}
	fmt.Fprintln(&b)

	fmt.Fprint(&b, "## Per Asset & Inventory Details\n\n")
	header := []string{"Asset", "Inventory", "Short-Term", "Long-Term"}
	if report.Schema.HasImpairmentExpense {
		header = append(header, "Imp. Expense")
	}
	if report.Schema.HasImpairmentReversal {
		header = append(header, "Imp. Reversal")
	}
	header = append(header, "Ending Balance")
	fmt.Fprintf(&b, "| %s |\n", strings.Join(header, " | "))
	fmt.Fprintf(&b, "|:---|:---%s|\n", strings.Repeat("|---:", len(header)-2))

	for _, row := range report.Rows {
		cells := []string{
			row.Asset,
			row.Inventory,
			actions.NewMoney(row.ShortTermGainLoss, currency).SignedString(),
			actions.NewMoney(row.LongTermGainLoss, currency).SignedString(),
		}
		if report.Schema.HasImpairmentExpense {
			cells = append(cells, actions.NewMoney(row.ImpairmentExpense, currency).SignedString())
		}
		if report.Schema.HasImpairmentReversal {
			cells = append(cells, actions.NewMoney(row.ImpairmentReversal, currency).SignedString())
		}
		if row.HasBalance {
			cells = append(cells, row.EndingBalance.String())
		} else {
			cells = append(cells, "n/a")
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(cells, " | "))
	}

	return b.String()
}

// DomainsMarkdown renders the selectable months, assets and inventories of a
// dataset, the values the original dashboard offered in its dropdowns.
func DomainsMarkdown(ds *actions.Dataset) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Report Domains\n\n")

	fmt.Fprint(&b, "## Months\n\n")
	for _, m := range ds.Months() {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	fmt.Fprint(&b, "\n## Assets\n\n")
	for _, a := range ds.Assets() {
		fmt.Fprintf(&b, "- %s\n", a)
	}
	fmt.Fprint(&b, "\n## Inventories\n\n")
	for _, inv := range ds.Inventories() {
		fmt.Fprintf(&b, "- %s\n", inv)
	}
	return b.String()
}

// CheckMarkdown renders a decode/normalize health summary for an upload.
func CheckMarkdown(ds *actions.Dataset, total int) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Actions Report Check\n\n")
	for _, w := range ds.Warnings {
		fmt.Fprintf(&b, "> ⚠️ %s\n\n", w)
	}

	undated := 0
	for _, r := range ds.Records {
		if !r.HasInstant() {
			undated++
		}
	}

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Rows in file | %d |\n", total)
	fmt.Fprintf(&b, "| Completed actions | %d |\n", len(ds.Records))
	fmt.Fprintf(&b, "| Unparseable timestamps | %d |\n", undated)
	fmt.Fprintf(&b, "| Months | %d |\n", len(ds.Months()))
	fmt.Fprintf(&b, "| Assets | %d |\n", len(ds.Assets()))
	fmt.Fprintf(&b, "| Inventories | %d |\n", len(ds.Inventories()))
	fmt.Fprintln(&b)

	fmt.Fprint(&b, "## Schema\n\n")
	flag := func(name string, ok bool) {
		if ok {
			fmt.Fprintf(&b, "- %s: present\n", name)
		} else {
			fmt.Fprintf(&b, "- %s: absent\n", name)
		}
	}
	flag("inventory", ds.Schema.HasInventory)
	flag("impairmentExpense", ds.Schema.HasImpairmentExpense)
	flag("impairmentReversal", ds.Schema.HasImpairmentReversal)

	return b.String()
}
