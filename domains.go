package actions

import (
	"slices"
	"strings"
)

// Months returns the distinct reporting months of the dataset, sorted
// chronologically. Records without a derived month do not contribute.
func (ds *Dataset) Months() []Month {
	var months []Month
	for _, r := range ds.Records {
		if !r.Month.IsZero() && !slices.Contains(months, r.Month) {
			months = append(months, r.Month)
		}
	}
	slices.SortFunc(months, Month.Compare)
	return months
}

// Assets returns the distinct assets of the dataset, sorted.
func (ds *Dataset) Assets() []string {
	return ds.domain(func(r Record) string { return r.Asset })
}

// Inventories returns the distinct inventories of the dataset, sorted. When
// the source had no inventory column this is at most [Unspecified].
func (ds *Dataset) Inventories() []string {
	return ds.domain(func(r Record) string { return r.Inventory })
}

func (ds *Dataset) domain(field func(Record) string) []string {
	var values []string
	for _, r := range ds.Records {
		if v := field(r); v != "" && !slices.Contains(values, v) {
			values = append(values, v)
		}
	}
	slices.SortFunc(values, strings.Compare)
	return values
}
