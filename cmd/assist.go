package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/xcoulter/actions/agent"
	"google.golang.org/genai"
)

type assistCmd struct {
	currency string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `mas assist [question...]

  Start an interactive session with the AI assistant. The assistant has the
  actions report loaded and answers questions about its monthly figures.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "USD", "Display currency for gain/loss amounts")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var seed []string
	if f.NArg() > 0 {
		seed = []string{strings.Join(f.Args(), " ")}
	}

	ds, _, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	sess := agent.NewSession(os.Stdout, os.Stdin, agent.NewAnalyst(ds, c.currency))
	if err := sess.Run(ctx, client, seed...); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
