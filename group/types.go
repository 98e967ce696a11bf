package group

import "sort"

// Table is an explicit multiplication table over a finite carrier set of
// string labels: Table[a][b] holds the product a∗b.
//
// The carrier set is defined by the row keys alone; column keys and cell
// values are checked against it during validation, never trusted. A Table
// passed into this package is never mutated and never retained after the
// call returns.
type Table map[string]map[string]string

// Elements returns the carrier set of t — its row keys — sorted in
// ascending label order. All validators iterate the carrier in this order,
// which makes "first found" outcomes (identity, inverse) deterministic.
//
// Column keys and cell values deliberately do not contribute: a stray
// product label that never appears as a row is a closure violation reported
// by Validate, not a carrier member.
//
// Time Complexity: O(n log n)
func Elements(t Table) []string {
	elems := make([]string, 0, len(t))
	for a := range t {
		elems = append(elems, a)
	}
	sort.Strings(elems)

	return elems
}

// Order returns the number of carrier elements in t.
//
// Time Complexity: O(1)
func Order(t Table) int {
	return len(t)
}
