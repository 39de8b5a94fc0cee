package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/xcoulter/actions/renderer"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate an actions report file" }
func (*checkCmd) Usage() string {
	return `mas check

  Decodes the actions report and shows what came out: row counts, detected
  optional columns, and any normalization warnings. Useful before reporting
  on a fresh export.
`
}

func (*checkCmd) SetFlags(*flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, total, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CheckMarkdown(ds, total))
	return subcommands.ExitSuccess
}
