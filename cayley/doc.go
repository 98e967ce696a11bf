// SPDX-License-Identifier: MIT
// Package cayley provides a dense, index-backed view of a finite
// multiplication table for constant-time products and tabular rendering.
//
// 🚀 What is a Dense view?
//
//	group.Table is a nested string map — flexible to author, but every
//	product costs two hash lookups and the carrier has no fixed order.
//	Dense snapshots a closed table into:
//	  • labels — sorted carrier labels, position = index
//	  • index  — label → index
//	  • data   — data[i][j] holds the index of labels[i]∗labels[j]
//
// Use Dense for repeated product queries over a fixed table, or to render
// the table as an aligned text grid (String).
//
// ✨ Key properties:
//   - FromTable verifies closure on ingestion; a Dense value therefore
//     always represents a closed magma (not necessarily a group — run
//     group.Validate on the source table for the full axioms)
//   - The snapshot is independent: later mutation of the source table
//     does not affect the Dense view, and ToTable allocates fresh maps
//   - Immutable after construction, safe for concurrent readers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/caylath/cayley"
//
//	d, err := cayley.FromTable(t)   // group.ErrNotClosed-style rejection
//	p, err := d.Product("a", "b")   // O(1)
//	fmt.Println(d)                  // aligned Cayley-table grid
//
// Complexity:
//
//   - FromTable: O(n²) time, O(n²) memory
//   - Product:   O(1)
//   - ToTable:   O(n²)
//   - String:    O(n²) with one width pass
package cayley
