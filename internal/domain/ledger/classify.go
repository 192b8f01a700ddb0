// Package ledger provides the inventory reconciliation and financial
// rollup engine: pure aggregation over record collections fetched by the
// caller. Every function here is a stateless fold over a full snapshot;
// the engine performs no I/O and owns no shared state, so the caller is
// responsible for fetching inputs and persisting derived outputs.
package ledger

import (
	"stockbook/internal/domain/sales"
)

// Class is the single classification of a sale status shared by the
// reconciler, the rollup, and the financial calculator, so "counts toward
// inventory" and "counts toward revenue" can never diverge.
type Class int

const (
	// ClassPending: parcel processing or sent. The stock has left the
	// shelf, so pending sales count toward stock-out, but they are not
	// yet counted in monthly totals or sold cost.
	ClassPending Class = iota

	// ClassCounted: delivered. Counts toward stock-out, monthly
	// delivered totals, and sold cost.
	ClassCounted

	// ClassReturned: returned. Excluded from stock-out (the units are
	// back on the shelf) and from sold cost; counted in monthly
	// returned totals.
	ClassReturned
)

// Classify maps a sale status to its aggregation class.
func Classify(status sales.Status) Class {
	switch status {
	case sales.StatusDelivered:
		return ClassCounted
	case sales.StatusReturned:
		return ClassReturned
	default:
		return ClassPending
	}
}
