package actions

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Column names of the actions report export.
const (
	colTimestamp          = "timestamp"
	colStatus             = "status"
	colAsset              = "asset"
	colInventory          = "inventory"
	colAssetBalance       = "assetBalance"
	colShortTermGainLoss  = "shortTermGainLoss"
	colLongTermGainLoss   = "longTermGainLoss"
	colImpairmentExpense  = "impairmentExpense"
	colImpairmentReversal = "impairmentReversal"
)

// requiredColumns must all be present in an upload; a missing one aborts the
// decode before any row is produced.
var requiredColumns = []string{
	colTimestamp,
	colStatus,
	colAsset,
	colAssetBalance,
	colShortTermGainLoss,
	colLongTermGainLoss,
}

// ErrMissingColumn reports an upload whose header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// DecodeActions reads a CSV actions report from r.
//
// The first row is the header; columns are matched by name, in any order.
// Missing any required column (timestamp, status, asset, assetBalance,
// shortTermGainLoss, longTermGainLoss) is fatal and wraps [ErrMissingColumn].
// A structurally malformed file (unbalanced quotes, ragged rows) is fatal too.
// The returned Schema records which of the optional columns (inventory,
// impairmentExpense, impairmentReversal) the file carried.
//
// Individual cell values are tolerated: an amount cell that does not parse as
// a decimal decodes as zero, and timestamps are kept as strings for the
// normalizer to deal with.
func DecodeActions(r io.Reader) ([]Action, Schema, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, Schema{}, fmt.Errorf("empty actions report: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, Schema{}, fmt.Errorf("cannot read actions report header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF") // exports from spreadsheets carry a BOM
		}
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, Schema{}, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	schema := Schema{
		HasInventory:          has(index, colInventory),
		HasImpairmentExpense:  has(index, colImpairmentExpense),
		HasImpairmentReversal: has(index, colImpairmentReversal),
	}

	var list []Action
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Schema{}, fmt.Errorf("cannot read actions report row: %w", err)
		}
		cell := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		list = append(list, Action{
			Timestamp:          cell(colTimestamp),
			Status:             cell(colStatus),
			Asset:              cell(colAsset),
			Inventory:          cell(colInventory),
			AssetBalance:       parseAmount(cell(colAssetBalance)),
			ShortTermGainLoss:  parseAmount(cell(colShortTermGainLoss)),
			LongTermGainLoss:   parseAmount(cell(colLongTermGainLoss)),
			ImpairmentExpense:  parseAmount(cell(colImpairmentExpense)),
			ImpairmentReversal: parseAmount(cell(colImpairmentReversal)),
		})
	}
	return list, schema, nil
}

func has(index map[string]int, name string) bool {
	_, ok := index[name]
	return ok
}

// parseAmount reads a decimal cell. Empty and unparseable cells decode as
// zero: amount cells are not the upload's contract, timestamps and columns are.
func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", "") // thousands separators in spreadsheet exports
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
