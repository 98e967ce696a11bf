// SPDX-License-Identifier: MIT
// Package: caylath/cayley
//
// render.go — aligned text rendering of a Dense table.
//
// Contract:
//   • Output is deterministic: rows and columns follow index (sorted
//     label) order, cell width is the longest label (min 1).
//   • Layout, for Z_3 with labels e, a, b:
//
//	 ∗ │ e a b
//	───┼──────
//	 e │ e a b
//	 a │ a b e
//	 b │ b e a

package cayley

import (
	"fmt"
	"strings"
)

// String renders the Cayley table as an aligned grid with a header row of
// column labels and a ∗-marked corner.
//
// Time Complexity: O(n²)
func (d *Dense) String() string {
	width := 1
	for _, l := range d.labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var sb strings.Builder

	// Header: corner marker, separator bar, column labels.
	fmt.Fprintf(&sb, " %*s │", width, "∗")
	for _, l := range d.labels {
		fmt.Fprintf(&sb, " %*s", width, l)
	}
	sb.WriteByte('\n')

	// Rule under the header. The ∗ corner cell is width wide plus the
	// surrounding spaces; each body cell adds width+1 runes.
	sb.WriteString(strings.Repeat("─", width+2))
	sb.WriteString("┼")
	sb.WriteString(strings.Repeat("─", (width+1)*len(d.labels)))
	sb.WriteByte('\n')

	// Body rows: row label, separator, products in column order.
	for i, a := range d.labels {
		fmt.Fprintf(&sb, " %*s │", width, a)
		for j := range d.labels {
			fmt.Fprintf(&sb, " %*s", width, d.labels[d.data[i][j]])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
