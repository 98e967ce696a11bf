// SPDX-License-Identifier: MIT
// Package builder constructs canonical finite-group multiplication tables
// deterministically: the same call always yields byte-for-byte the same
// group.Table.
//
// 🚀 What can it build?
//
//	• Trivial()            — the one-element group {e}
//	• Cyclic(n)            — the cyclic group Z_n, n ≥ 1
//	• KleinFour()          — the Klein four-group Z_2 × Z_2
//	• Dihedral(n)          — the dihedral group D_n of order 2n, n ≥ 3
//	• DirectProduct(a, b)  — the product group of two valid tables
//
// ✨ Guarantees:
//   - Every constructor's output passes group.Validate — builders are the
//     canonical source of known-good fixtures for tests and examples
//   - Deterministic labels: each constructor has a fixed canonical scheme
//     ("e", "g1", …; rotations "r1", reflections "s0", …) overridable with
//     WithLabels
//   - Sentinel errors only; constructors never panic at runtime (option
//     constructors panic on programmer error, per the option contract)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/caylath/builder"
//
//	z3, err := builder.Cyclic(3, builder.WithLabels("e", "a", "b"))
//	// z3["a"]["b"] == "e"
//
// Complexity: a constructor of order n fills an n×n table — O(n²) time and
// memory (O(n²·m²) for DirectProduct of orders n and m).
package builder
