package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/xcoulter/actions/cmd"
)

// completion describes the CLI for shell completion. When invoked by the
// shell's completion hook it prints candidates and exits.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"f":    predict.Files("*"),
		"path": predict.Nothing,
		"tz":   predict.Set{"UTC", "America/New_York", "Europe/Paris", "Asia/Tokyo"},
	},
	Sub: map[string]*complete.Command{
		"report": {Flags: map[string]complete.Predictor{
			"month":     predict.Nothing,
			"asset":     predict.Nothing,
			"inventory": predict.Nothing,
			"c":         predict.Set{"USD", "EUR", "GBP", "JPY"},
		}},
		"domains": {},
		"check":   {},
		"serve": {Flags: map[string]complete.Predictor{
			"addr": predict.Nothing,
			"c":    predict.Set{"USD", "EUR", "GBP", "JPY"},
		}},
		"topic": {Args: predict.Set{"readme", "format", "timezones", "reporting", "*"}},
		"assist": {Flags: map[string]complete.Predictor{
			"c": predict.Set{"USD", "EUR", "GBP", "JPY"},
		}},
	},
}

func main() {
	completion.Complete("mas")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
