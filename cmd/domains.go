package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/xcoulter/actions/renderer"
)

type domainsCmd struct{}

func (*domainsCmd) Name() string     { return "domains" }
func (*domainsCmd) Synopsis() string { return "list the months, assets and inventories of a report" }
func (*domainsCmd) Usage() string {
	return `mas domains

  Lists the reportable months, assets and inventories found in the actions
  report, the values accepted by the report filters.
`
}

func (*domainsCmd) SetFlags(*flag.FlagSet) {}

func (c *domainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, _, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DomainsMarkdown(ds))
	return subcommands.ExitSuccess
}
