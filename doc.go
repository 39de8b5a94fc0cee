// Package actions turns an exported "actions report" (one row per asset
// transaction) into monthly gain/loss and ending-balance summaries.
//
// The core is a small, side-effect free pipeline:
//   - Decoding: reading a CSV (or JSON) export into raw [Action] values and a
//     [Schema] describing which optional columns the source carried.
//   - Normalization: parsing timestamps into timezone-aware instants, deriving
//     the calendar [Month] each action belongs to, defaulting the inventory
//     label, and keeping only completed actions.
//   - Filtering: selecting a single month and, optionally, one asset and one
//     inventory.
//   - Aggregation: per (month, asset, inventory) group, the sum of gain/loss
//     columns and the ending balance of the chronologically last action.
//   - Summary: scalar totals over the rows in view.
//
// Every pass recomputes from the in-memory dataset; nothing is persisted.
// This package serves as the foundational logic for the `mas` command-line
// tool and its web front-end.
package actions
