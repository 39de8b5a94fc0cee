package actions

import (
	"fmt"
	"time"
)

// timestampLayouts are tried in order when parsing an action timestamp.
// Layouts without a zone are interpreted as UTC, matching the exports.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize turns raw actions into a Dataset ready for filtering and
// aggregation, observed in the display timezone tz (IANA name, "" or "UTC"
// for UTC).
//
// Per record: the timestamp is parsed into a UTC instant (a cell that fails
// to parse yields a record without instant or month, never an error), the
// month is derived in the display timezone, and the inventory defaults to
// [Unspecified] when the column is absent from the schema or the cell is
// empty. Only actions with status "complete" survive; input order is
// preserved.
//
// An unknown timezone is a soft condition: the whole pass falls back to UTC
// and a single warning is recorded on the Dataset.
func Normalize(list []Action, schema Schema, tz string) *Dataset {
	ds := &Dataset{Schema: schema, Location: time.UTC}

	if tz != "" && tz != "UTC" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			ds.Warnings = append(ds.Warnings,
				fmt.Sprintf("unknown timezone %q, falling back to UTC", tz))
		} else {
			ds.Location = loc
		}
	}

	for _, a := range list {
		if a.Status != StatusComplete {
			continue
		}
		if a.Inventory == "" {
			a.Inventory = Unspecified
		}
		rec := Record{Action: a}
		if instant, ok := parseTimestamp(a.Timestamp); ok {
			rec.Instant = instant
			rec.Month = MonthOf(instant, ds.Location)
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds
}

// parseTimestamp parses an action timestamp into a UTC instant.
func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
