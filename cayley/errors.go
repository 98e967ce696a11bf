// SPDX-License-Identifier: MIT
// Package cayley: sentinel error set. Callers branch with errors.Is; the
// sentinels mirror the group package's misuse/negative split.

package cayley

import "errors"

var (
	// ErrEmptyTable indicates a nil or empty source table was passed to
	// FromTable. Caller misuse.
	ErrEmptyTable = errors.New("cayley: table is nil or empty")

	// ErrNotClosed indicates the source table references a label outside
	// its carrier set, or a row does not cover the carrier; a dense index
	// cannot represent such a table.
	ErrNotClosed = errors.New("cayley: table is not closed")

	// ErrUnknownElement indicates a Product argument that is not a carrier
	// label of this view.
	ErrUnknownElement = errors.New("cayley: unknown element")
)
