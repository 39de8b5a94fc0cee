package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xcoulter/actions"
)

func sampleReport() *actions.Report {
	jan := actions.NewMonth(2024, time.January)
	return &actions.Report{
		Selection: actions.NewSelection(jan),
		Schema:    actions.Schema{HasInventory: true},
		Rows: []actions.Row{
			{
				Key:               actions.Key{Month: jan, Asset: "BTC", Inventory: "Main"},
				ShortTermGainLoss: decimal.RequireFromString("6.5"),
				LongTermGainLoss:  decimal.NewFromInt(-3),
				EndingBalance:     decimal.NewFromInt(150),
				HasBalance:        true,
			},
			{
				Key:               actions.Key{Month: jan, Asset: "ETH", Inventory: "Main"},
				ShortTermGainLoss: decimal.NewFromInt(2),
			},
		},
		Totals: actions.Totals{
			ShortTermGainLoss: decimal.RequireFromString("8.5"),
			LongTermGainLoss:  decimal.NewFromInt(-3),
		},
	}
}

func TestReportMarkdown(t *testing.T) {
	md := ReportMarkdown(sampleReport(), "USD")

	for _, want := range []string{
		"# Monthly Actions Summary — 2024-01",
		"| Short-Term Gain/Loss | +$8.50 |",
		"| Long-Term Gain/Loss | -$3.00 |",
		"| BTC | Main | +$6.50 | -$3.00 | 150 |",
		"| ETH | Main | +$2.00 | - | n/a |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Impairment") {
		t.Errorf("impairment rows must not render when the columns are absent:\n%s", md)
	}
}

func TestReportMarkdown_ImpairmentColumns(t *testing.T) {
	r := sampleReport()
	r.Schema.HasImpairmentExpense = true
	r.Schema.HasImpairmentReversal = true
	r.Totals.ImpairmentExpense = decimal.NewFromInt(7)

	md := ReportMarkdown(r, "USD")
	if !strings.Contains(md, "| Impairment Expense | +$7.00 |") {
		t.Errorf("missing impairment expense total:\n%s", md)
	}
	if !strings.Contains(md, "Imp. Reversal") {
		t.Errorf("missing impairment reversal column:\n%s", md)
	}
}

func TestReportMarkdown_Empty(t *testing.T) {
	r := &actions.Report{Selection: actions.NewSelection(actions.NewMonth(2024, time.March))}
	md := ReportMarkdown(r, "USD")
	if !strings.Contains(md, "No completed actions match this selection.") {
		t.Errorf("empty report should say so:\n%s", md)
	}
}

func TestReportMarkdown_FilterAndWarnings(t *testing.T) {
	r := sampleReport()
	r.Selection.Asset = "BTC"
	r.Warnings = []string{`unknown timezone "Mars/Phobos", falling back to UTC`}

	md := ReportMarkdown(r, "USD")
	if !strings.Contains(md, "Asset: BTC") {
		t.Errorf("asset filter note missing:\n%s", md)
	}
	if !strings.Contains(md, "falling back to UTC") {
		t.Errorf("warning blockquote missing:\n%s", md)
	}
}

func TestDomainsMarkdown(t *testing.T) {
	list, schema, err := actions.DecodeActions(strings.NewReader(
		"timestamp,status,asset,inventory,shortTermGainLoss,longTermGainLoss,assetBalance\n" +
			"2024-01-05T00:00:00Z,complete,BTC,Main,1,0,10\n" +
			"2024-02-05T00:00:00Z,complete,ETH,Cold,2,0,20\n"))
	if err != nil {
		t.Fatalf("DecodeActions() error = %v", err)
	}
	md := DomainsMarkdown(actions.Normalize(list, schema, "UTC"))

	for _, want := range []string{"- 2024-01", "- 2024-02", "- BTC", "- ETH", "- Cold", "- Main"} {
		if !strings.Contains(md, want) {
			t.Errorf("domains markdown missing %q:\n%s", want, md)
		}
	}
}

func TestCheckMarkdown(t *testing.T) {
	list, schema, err := actions.DecodeActions(strings.NewReader(
		"timestamp,status,asset,shortTermGainLoss,longTermGainLoss,assetBalance\n" +
			"2024-01-05T00:00:00Z,complete,BTC,1,0,10\n" +
			"garbage,complete,ETH,2,0,20\n" +
			"2024-01-06T00:00:00Z,pending,BTC,3,0,30\n"))
	if err != nil {
		t.Fatalf("DecodeActions() error = %v", err)
	}
	md := CheckMarkdown(actions.Normalize(list, schema, "UTC"), len(list))

	for _, want := range []string{
		"| Rows in file | 3 |",
		"| Completed actions | 2 |",
		"| Unparseable timestamps | 1 |",
		"- inventory: absent",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("check markdown missing %q:\n%s", want, md)
		}
	}
}
