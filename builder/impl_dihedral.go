// SPDX-License-Identifier: MIT
// Package: caylath/builder
//
// impl_dihedral.go — Dihedral(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewElements): D_1 and D_2 degenerate into groups
//     already covered by Cyclic and KleinFour.
//   • Order is 2n. Carrier positions 0..n-1 are the rotations r^k
//     (position 0 = identity), positions n..2n-1 the reflections r^k·s.
//   • Canonical labels: "e", "r1", …, "r(n-1)", "s0", …, "s(n-1)".
//   • Product rule from s·r^k = r^(-k)·s:
//       (r^k1 s^f1)(r^k2 s^f2) = r^(k1 ± k2 mod n) s^(f1 XOR f2),
//     with "+" when f1 = 0 and "−" when f1 = 1.
//   • First non-abelian group family exposed by the package (for n ≥ 3).
//
// Complexity:
//   • Time: O(n²) cells over order 2n.
//   • Space: O(n²).
//
// Determinism:
//   • Labels are a pure function of n (or the WithLabels override, which
//     follows the same positional order: rotations then reflections).

package builder

import (
	"fmt"

	"github.com/katalvlaran/caylath/group"
)

const (
	methodDihedral = "Dihedral"

	minDihedralOrder = 3
)

// dihedralLabels builds the canonical scheme for D_n.
func dihedralLabels(n int) []string {
	labels := make([]string, 2*n)
	labels[0] = "e"
	for k := 1; k < n; k++ {
		labels[k] = fmt.Sprintf("r%d", k)
	}
	for k := 0; k < n; k++ {
		labels[n+k] = fmt.Sprintf("s%d", k)
	}

	return labels
}

// Dihedral returns the dihedral group D_n of order 2n: the symmetries of a
// regular n-gon (n rotations, n reflections).
func Dihedral(n int, opts ...Option) (group.Table, error) {
	if n < minDihedralOrder {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodDihedral, n, minDihedralOrder, ErrTooFewElements)
	}

	labels, err := resolveLabels(methodDihedral, 2*n, dihedralLabels(n), newConfig(opts...))
	if err != nil {
		return nil, err
	}

	// Decode position p into (rotation k, flip f), multiply, re-encode.
	mul := func(i, j int) int {
		k1, f1 := i%n, i/n
		k2, f2 := j%n, j/n
		var k int
		if f1 == 0 {
			k = (k1 + k2) % n
		} else {
			k = (k1 - k2 + n) % n
		}

		return (f1^f2)*n + k
	}

	return buildTable(labels, mul), nil
}
