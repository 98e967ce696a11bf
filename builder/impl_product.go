// SPDX-License-Identifier: MIT
// Package: caylath/builder
//
// impl_product.go — DirectProduct(a, b) constructor.
//
// Contract:
//   • Both factors MUST pass group.Validate; a failing factor yields
//     ErrNotGroup with the factor's own axiom sentinel in the chain.
//   • Carrier positions are row-major over (x, y) with x ranging over
//     group.Elements(a) and y over group.Elements(b) — both sorted, so
//     the position order is deterministic.
//   • Canonical labels: "(x,y)". WithLabels overrides positionally in the
//     same row-major order.
//   • Product rule is componentwise: (x1,y1)∗(x2,y2) = (x1∗x2, y1∗y2).
//
// Complexity:
//   • Time: O(n²·m²) cells for factor orders n and m.
//   • Space: O(n²·m²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/caylath/group"
)

const methodProduct = "DirectProduct"

// DirectProduct returns the direct product of two valid group tables: the
// group over all ordered pairs of factor elements with componentwise
// multiplication.
func DirectProduct(a, b group.Table, opts ...Option) (group.Table, error) {
	if err := group.Validate(a); err != nil {
		return nil, fmt.Errorf("%s: first factor: %w: %w", methodProduct, ErrNotGroup, err)
	}
	if err := group.Validate(b); err != nil {
		return nil, fmt.Errorf("%s: second factor: %w: %w", methodProduct, ErrNotGroup, err)
	}

	xs, ys := group.Elements(a), group.Elements(b)
	n, m := len(xs), len(ys)

	canonical := make([]string, 0, n*m)
	for _, x := range xs {
		for _, y := range ys {
			canonical = append(canonical, fmt.Sprintf("(%s,%s)", x, y))
		}
	}

	labels, err := resolveLabels(methodProduct, n*m, canonical, newConfig(opts...))
	if err != nil {
		return nil, err
	}

	// Positions encode pairs row-major: p = xIndex*m + yIndex. Products
	// need pair indices of factor products, so index the factor carriers.
	xIdx := make(map[string]int, n)
	for i, x := range xs {
		xIdx[x] = i
	}
	yIdx := make(map[string]int, m)
	for j, y := range ys {
		yIdx[y] = j
	}

	mul := func(i, j int) int {
		px := a[xs[i/m]][xs[j/m]]
		py := b[ys[i%m]][ys[j%m]]

		return xIdx[px]*m + yIdx[py]
	}

	return buildTable(labels, mul), nil
}
