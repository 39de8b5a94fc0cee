package actions

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultActionsPath locates the action rows in a JSON export.
const DefaultActionsPath = "$.actions"

// DecodeActionsJSON reads a JSON actions report from r. Some platforms export
// the same report as a JSON document with the rows nested under an envelope;
// path is a JSONPath expression selecting the array of action objects
// (DefaultActionsPath when empty).
//
// Field names and requiredness match the CSV columns. The Schema is derived
// from key presence across the rows: a field present on any row counts as a
// column of the dataset.
func DecodeActionsJSON(r io.Reader, path string) ([]Action, Schema, error) {
	if path == "" {
		path = DefaultActionsPath
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, Schema{}, fmt.Errorf("cannot parse JSON actions report: %w", err)
	}

	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, Schema{}, fmt.Errorf("cannot locate actions at %q: %w", path, err)
	}
	rows, ok := jval.([]any)
	if !ok {
		// because jsonpath is never clear about whether it returns a list of
		// answers or a single answer: accept a single object as a 1-row report
		if obj, isObj := jval.(map[string]any); isObj {
			rows = []any{obj}
		} else {
			return nil, Schema{}, fmt.Errorf("path %q does not select an array of actions", path)
		}
	}

	var schema Schema
	var list []Action
	seen := make(map[string]bool, len(requiredColumns))
	for i, jrow := range rows {
		obj, ok := jrow.(map[string]any)
		if !ok {
			return nil, Schema{}, fmt.Errorf("action %d at %q is not an object", i, path)
		}
		for _, name := range requiredColumns {
			if _, ok := obj[name]; ok {
				seen[name] = true
			}
		}
		if _, ok := obj[colInventory]; ok {
			schema.HasInventory = true
		}
		if _, ok := obj[colImpairmentExpense]; ok {
			schema.HasImpairmentExpense = true
		}
		if _, ok := obj[colImpairmentReversal]; ok {
			schema.HasImpairmentReversal = true
		}
		list = append(list, Action{
			Timestamp:          jsonString(obj[colTimestamp]),
			Status:             jsonString(obj[colStatus]),
			Asset:              jsonString(obj[colAsset]),
			Inventory:          jsonString(obj[colInventory]),
			AssetBalance:       jsonAmount(obj[colAssetBalance]),
			ShortTermGainLoss:  jsonAmount(obj[colShortTermGainLoss]),
			LongTermGainLoss:   jsonAmount(obj[colLongTermGainLoss]),
			ImpairmentExpense:  jsonAmount(obj[colImpairmentExpense]),
			ImpairmentReversal: jsonAmount(obj[colImpairmentReversal]),
		})
	}

	if len(rows) > 0 {
		for _, name := range requiredColumns {
			if !seen[name] {
				return nil, Schema{}, fmt.Errorf("%w: %q", ErrMissingColumn, name)
			}
		}
	}

	return list, schema, nil
}

func jsonString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

// jsonAmount reads a decimal value. This weird format sometimes carries
// amounts as strings, sometimes as numbers.
func jsonAmount(v any) decimal.Decimal {
	switch n := v.(type) {
	case json.Number:
		return parseAmount(n.String())
	case string:
		return parseAmount(n)
	default:
		return decimal.Zero
	}
}
