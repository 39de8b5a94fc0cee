package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/xcoulter/actions/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a page of the built-in manual" }
func (*topicCmd) Usage() string {
	return `mas topic [<topic>...]

  Prints one or more pages of the built-in manual. Without arguments, prints
  the index with the list of topics. 'mas topic "*"' prints the whole manual.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}

	manual, err := docs.Manual(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(manual)

	return subcommands.ExitSuccess
}
