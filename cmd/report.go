package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/xcoulter/actions"
	"github.com/xcoulter/actions/renderer"
)

type reportCmd struct {
	month     string
	asset     string
	inventory string
	currency  string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the monthly actions summary" }
func (*reportCmd) Usage() string {
	return `mas report [-month <YYYY-MM>] [-asset <asset>] [-inventory <inventory>]

  Displays the summary of one calendar month of completed actions: the sum of
  gains and losses and the ending balance, per asset and inventory, with
  totals. Defaults to the most recent month in the file.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month to report on, formatted YYYY-MM (defaults to the latest in the file)")
	f.StringVar(&c.asset, "asset", actions.All, "Restrict the report to one asset")
	f.StringVar(&c.inventory, "inventory", actions.All, "Restrict the report to one inventory")
	f.StringVar(&c.currency, "c", "USD", "Display currency for gain/loss amounts")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, _, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var month actions.Month
	if c.month == "" {
		month, err = latestMonth(ds)
	} else {
		month, err = actions.ParseMonth(c.month)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	sel := actions.Selection{Month: month, Asset: c.asset, Inventory: c.inventory}
	report := ds.NewReport(sel)
	printMarkdown(renderer.ReportMarkdown(report, c.currency))
	return subcommands.ExitSuccess
}
