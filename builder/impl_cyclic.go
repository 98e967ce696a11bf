// SPDX-License-Identifier: MIT
// Package: caylath/builder
//
// impl_cyclic.go — Trivial() and Cyclic(n) constructors.
//
// Contract:
//   • Cyclic: n ≥ 1 (else ErrTooFewElements); Trivial ≡ Cyclic(1).
//   • Canonical labels: "e", "g1", …, "g(n-1)" with g1 the generator.
//   • Product rule on indices: i∗j = (i+j) mod n.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n²) cells.
//   • Space: O(n²) for the table.
//
// Determinism:
//   • Labels are a pure function of n (or the WithLabels override).

package builder

import (
	"fmt"

	"github.com/katalvlaran/caylath/group"
)

const (
	methodTrivial = "Trivial"
	methodCyclic  = "Cyclic"

	minCyclicOrder = 1
)

// Trivial returns the one-element group {e}: the smallest valid table,
// with the identity as its own inverse.
func Trivial(opts ...Option) (group.Table, error) {
	labels, err := resolveLabels(methodTrivial, 1, generatorLabels(1), newConfig(opts...))
	if err != nil {
		return nil, err
	}

	return buildTable(labels, func(_, _ int) int { return 0 }), nil
}

// Cyclic returns the cyclic group Z_n of order n: the group generated by a
// single element, with i∗j = (i+j) mod n on label indices. Label index 0
// is the identity.
func Cyclic(n int, opts ...Option) (group.Table, error) {
	// Validate parameter domain early (fail fast, no work on invalid input).
	if n < minCyclicOrder {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCyclic, n, minCyclicOrder, ErrTooFewElements)
	}

	labels, err := resolveLabels(methodCyclic, n, generatorLabels(n), newConfig(opts...))
	if err != nil {
		return nil, err
	}

	return buildTable(labels, func(i, j int) int { return (i + j) % n }), nil
}
