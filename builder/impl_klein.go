// SPDX-License-Identifier: MIT
// Package: caylath/builder
//
// impl_klein.go — KleinFour() constructor.
//
// Contract:
//   • Order is fixed at 4; canonical labels "e", "a", "b", "c".
//   • Product rule on indices: i∗j = i XOR j — the Klein four-group is
//     (Z_2)², and XOR is exactly componentwise addition mod 2.
//   • Every non-identity element is its own inverse (order 2).
//
// Complexity:
//   • Time: O(1) — 16 cells.
//   • Space: O(1).

package builder

import "github.com/katalvlaran/caylath/group"

const (
	methodKlein = "KleinFour"

	kleinOrder = 4
)

// kleinLabels is the canonical scheme: identity first, then the three
// involutions in alphabetical order.
var kleinLabels = []string{"e", "a", "b", "c"}

// KleinFour returns the Klein four-group V = Z_2 × Z_2: the smallest
// non-cyclic group. Unlike Cyclic(4), every element squares to the
// identity.
func KleinFour(opts ...Option) (group.Table, error) {
	labels, err := resolveLabels(methodKlein, kleinOrder, kleinLabels, newConfig(opts...))
	if err != nil {
		return nil, err
	}

	return buildTable(labels, func(i, j int) int { return i ^ j }), nil
}
