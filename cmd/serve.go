package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/google/subcommands"
	"github.com/xcoulter/actions/server"
)

type serveCmd struct {
	addr     string
	currency string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the actions report dashboard over HTTP" }
func (*serveCmd) Usage() string {
	return `mas serve [-addr <host:port>]

  Serves a web dashboard over the actions report: pick a month, an asset and
  an inventory, and read the summary. New reports can be uploaded from the
  page and replace the loaded one.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "localhost:8080", "Address to listen on")
	f.StringVar(&c.currency, "c", "USD", "Display currency for gain/loss amounts")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, _, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	s := server.NewServer(c.addr, ds, c.currency)
	log.Printf("serving actions dashboard on http://%s", c.addr)
	if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
