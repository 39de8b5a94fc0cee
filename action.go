package actions

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusComplete is the only status that survives normalization. Exports also
// contain pending and failed actions; they carry no settled amounts.
const StatusComplete = "complete"

// Unspecified is the sentinel inventory assigned to actions whose source did
// not carry an inventory label.
const Unspecified = "Unspecified"

// Action is one raw row of an actions report, as found in the export.
// Timestamp is kept as the source string: parsing it is the normalizer's job,
// and a cell that does not parse must not fail the whole decode.
type Action struct {
	Timestamp string
	Status    string
	Asset     string
	Inventory string

	AssetBalance       decimal.Decimal
	ShortTermGainLoss  decimal.Decimal
	LongTermGainLoss   decimal.Decimal
	ImpairmentExpense  decimal.Decimal
	ImpairmentReversal decimal.Decimal
}

// Schema records which optional columns the source dataset carried. It is
// computed once at decode time and threaded through the pipeline, so that
// downstream stages never have to guess whether a zero value means "zero" or
// "column absent".
type Schema struct {
	HasInventory          bool
	HasImpairmentExpense  bool
	HasImpairmentReversal bool
}

// Record is a normalized action: the raw row plus its timezone-aware instant
// and the calendar month it belongs to.
//
// Instant is the zero time when the source timestamp did not parse; such
// records keep a zero Month and therefore never match a month filter nor
// contribute to any aggregate group.
type Record struct {
	Action
	Instant time.Time
	Month   Month
}

// HasInstant reports whether the source timestamp parsed.
func (r Record) HasInstant() bool { return !r.Instant.IsZero() }

// Dataset is one normalized in-memory actions report. It is fully derived
// from the uploaded rows: every user interaction recomputes from it, and no
// two datasets are ever merged.
type Dataset struct {
	Records  []Record
	Schema   Schema
	Location *time.Location

	// Warnings holds non-fatal conditions observed while normalizing, such
	// as an unknown display timezone. At most one entry per condition per
	// pass, never one per row.
	Warnings []string
}
