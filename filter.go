package actions

// All is the sentinel meaning "no constraint" for the asset and inventory
// dimensions of a Selection. The month dimension has no such sentinel: a
// report is always about one concrete month.
const All = "All"

// Selection is one choice of reporting filters.
type Selection struct {
	Month     Month
	Asset     string
	Inventory string
}

// NewSelection returns a Selection for the given month with both optional
// dimensions unconstrained.
func NewSelection(month Month) Selection {
	return Selection{Month: month, Asset: All, Inventory: All}
}

func (s Selection) matches(r Record) bool {
	if r.Month.IsZero() || r.Month != s.Month {
		return false
	}
	if s.Asset != All && s.Asset != "" && r.Asset != s.Asset {
		return false
	}
	if s.Inventory != All && s.Inventory != "" && r.Inventory != s.Inventory {
		return false
	}
	return true
}

// Filter returns the records matching the selection, in their original order.
// Records without a derived month never match (a zero Month only equals the
// zero Month, and selections are built from concrete months).
func Filter(records []Record, sel Selection) []Record {
	var out []Record
	for _, r := range records {
		if sel.matches(r) {
			out = append(out, r)
		}
	}
	return out
}
