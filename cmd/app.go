// Package cmd implements the CLI application to summarize actions reports.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/xcoulter/actions"
)

// Commands lists the subcommands of the mas tool.
// A main package ranges over it to register them.
var Commands = []subcommands.Command{
	&reportCmd{},
	&domainsCmd{},
	&checkCmd{},
	&serveCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var actionsFile = flag.String("f", "actions.csv", "Path to the actions report file (CSV, or JSON for .json files)")
var jsonPath = flag.String("path", actions.DefaultActionsPath, "JSONPath of the rows array in JSON inputs")
var timezone = flag.String("tz", "UTC", "Reporting timezone used to assign actions to months")

// DecodeDataset reads the app's actions report file, picking the decoder from
// the file extension, and normalizes it into a dataset. It also returns the
// raw row count, before the completed-only filter.
func DecodeDataset() (*actions.Dataset, int, error) {
	f, err := os.Open(*actionsFile)
	if err != nil {
		return nil, 0, fmt.Errorf("could not open actions report %q: %w", *actionsFile, err)
	}
	defer f.Close()

	var list []actions.Action
	var schema actions.Schema
	if strings.EqualFold(filepath.Ext(*actionsFile), ".json") {
		list, schema, err = actions.DecodeActionsJSON(f, *jsonPath)
	} else {
		list, schema, err = actions.DecodeActions(f)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("could not decode actions report %q: %w", *actionsFile, err)
	}

	return actions.Normalize(list, schema, *timezone), len(list), nil
}

// latestMonth picks the default reporting month: the most recent one present
// in the dataset.
func latestMonth(ds *actions.Dataset) (actions.Month, error) {
	months := ds.Months()
	if len(months) == 0 {
		return actions.Month{}, fmt.Errorf("no dated completed actions in %q, specify -month explicitly", *actionsFile)
	}
	return months[len(months)-1], nil
}
