// SPDX-License-Identifier: MIT
// Package: caylath/builder
//
// helpers.go — shared label resolution and table assembly.
//
// Contract:
//   • resolveLabels is the single validation point for WithLabels input:
//     exact count, no empties, no duplicates. Every constructor funnels
//     through it so the sentinels behave identically everywhere.
//   • buildTable materializes a group.Table from an index-level product
//     function, so constructors only ever reason about integer indices.
//
// Determinism:
//   • Canonical label schemes are pure functions of the order n.
//   • buildTable fills rows in ascending index order; map iteration order
//     of the result is irrelevant because group.Elements sorts.

package builder

import (
	"fmt"

	"github.com/katalvlaran/caylath/group"
)

// resolveLabels returns the effective label slice for a constructor with
// carrier size n: the canonical scheme when no override was given, or the
// validated override from WithLabels.
func resolveLabels(method string, n int, canonical []string, cfg config) ([]string, error) {
	if cfg.labels == nil {
		return canonical, nil
	}
	if len(cfg.labels) != n {
		return nil, fmt.Errorf("%s: got %d labels, want %d: %w", method, len(cfg.labels), n, ErrLabelCount)
	}
	seen := make(map[string]struct{}, n)
	for _, l := range cfg.labels {
		if l == "" {
			return nil, fmt.Errorf("%s: %w", method, ErrEmptyLabel)
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("%s: label %q: %w", method, l, ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}

	return cfg.labels, nil
}

// buildTable assembles a group.Table of order n from labels and an
// index-level product: mul(i, j) is the index of labels[i]∗labels[j].
// Complexity: O(n²) time and memory.
func buildTable(labels []string, mul func(i, j int) int) group.Table {
	n := len(labels)
	t := make(group.Table, n)
	for i := 0; i < n; i++ {
		row := make(map[string]string, n)
		for j := 0; j < n; j++ {
			row[labels[j]] = labels[mul(i, j)]
		}
		t[labels[i]] = row
	}

	return t
}

// generatorLabels is the canonical scheme shared by Trivial and Cyclic:
// identity "e" first, then "g1".."g(n-1)" for ascending generator powers.
func generatorLabels(n int) []string {
	labels := make([]string, n)
	labels[0] = "e"
	for i := 1; i < n; i++ {
		labels[i] = fmt.Sprintf("g%d", i)
	}

	return labels
}
