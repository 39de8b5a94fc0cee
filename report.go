package actions

// Report is one fully computed monthly summary: the aggregate table for the
// selection plus its headline totals. It is a pure function of the dataset
// and the selection; callers recompute it on every interaction.
type Report struct {
	Selection Selection
	Schema    Schema
	Rows      []Row
	Totals    Totals

	// Warnings carried over from normalization, for the presentation layer
	// to surface.
	Warnings []string
}

// NewReport runs filter, aggregation and summary for one selection.
// A selection matching no record yields an empty report, not an error.
func (ds *Dataset) NewReport(sel Selection) *Report {
	rows := Aggregate(Filter(ds.Records, sel), ds.Schema)
	return &Report{
		Selection: sel,
		Schema:    ds.Schema,
		Rows:      rows,
		Totals:    Summarize(rows, ds.Schema),
		Warnings:  ds.Warnings,
	}
}
