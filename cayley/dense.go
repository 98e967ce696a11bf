// SPDX-License-Identifier: MIT
// Package: caylath/cayley
//
// dense.go — Dense construction, queries and conversions.
//
// Contract:
//   • FromTable rejects non-closed input (ErrNotClosed) and nil/empty
//     input (ErrEmptyTable); a constructed Dense is always closed.
//   • Indices follow sorted label order, matching group.Elements, so a
//     Dense built twice from equal tables is identical.
//   • Dense is immutable after construction; all accessors are read-only.

package cayley

import (
	"fmt"

	"github.com/katalvlaran/caylath/group"
)

// Dense holds a fixed-size, index-backed representation of a closed
// multiplication table.
//
// Algorithm Dense construction:
//  1. Sort the carrier (row keys) and build index: label → position.
//  2. Allocate data as an n×n slice.
//  3. For each carrier pair (i, j), resolve t[labels[i]][labels[j]] and
//     store its index; any miss or foreign product aborts with
//     ErrNotClosed.
//
// Time complexity:
//   - Product:  O(1)
//   - ToTable:  O(n²)
//
// Memory:
//   - O(n²).
type Dense struct {
	// labels maps position → carrier label, in sorted order.
	labels []string
	// index maps carrier label → position in labels/data.
	index map[string]int
	// data[i][j] holds the position of the product labels[i]∗labels[j].
	data [][]int
}

// FromTable builds a Dense view of t. The table must be closed: every row
// covers exactly the carrier set and every product is a carrier element.
//
// Time Complexity: O(n²)
// Memory: O(n²)
func FromTable(t group.Table) (*Dense, error) {
	if len(t) == 0 {
		return nil, ErrEmptyTable
	}

	labels := group.Elements(t)
	n := len(labels)
	index := make(map[string]int, n)
	for i, l := range labels {
		index[l] = i
	}

	data := make([][]int, n)
	for i, a := range labels {
		row := t[a]
		if len(row) != n {
			return nil, fmt.Errorf("FromTable: row %q has %d columns, want %d: %w", a, len(row), n, ErrNotClosed)
		}
		data[i] = make([]int, n)
		for j, b := range labels {
			p, ok := row[b]
			if !ok {
				return nil, fmt.Errorf("FromTable: row %q: missing column %q: %w", a, b, ErrNotClosed)
			}
			k, member := index[p]
			if !member {
				return nil, fmt.Errorf("FromTable: %q∗%q = %q outside carrier: %w", a, b, p, ErrNotClosed)
			}
			data[i][j] = k
		}
	}

	return &Dense{labels: labels, index: index, data: data}, nil
}

// Product returns the product a∗b. Returns ErrUnknownElement if either
// argument is not a carrier label of this view.
//
// Time Complexity: O(1)
func (d *Dense) Product(a, b string) (string, error) {
	i, ok := d.index[a]
	if !ok {
		return "", fmt.Errorf("Product: %q: %w", a, ErrUnknownElement)
	}
	j, ok := d.index[b]
	if !ok {
		return "", fmt.Errorf("Product: %q: %w", b, ErrUnknownElement)
	}

	return d.labels[d.data[i][j]], nil
}

// Order returns the carrier size of the view.
//
// Time Complexity: O(1)
func (d *Dense) Order() int {
	return len(d.labels)
}

// Labels returns the carrier labels in index (sorted) order. The returned
// slice is a copy; mutating it does not affect the view.
//
// Time Complexity: O(n)
func (d *Dense) Labels() []string {
	return append([]string(nil), d.labels...)
}

// ToTable reconstructs a group.Table from the view. All maps are freshly
// allocated, so the result is safe to mutate independently.
//
// Time Complexity: O(n²)
func (d *Dense) ToTable() group.Table {
	n := len(d.labels)
	t := make(group.Table, n)
	for i, a := range d.labels {
		row := make(map[string]string, n)
		for j, b := range d.labels {
			row[b] = d.labels[d.data[i][j]]
		}
		t[a] = row
	}

	return t
}
