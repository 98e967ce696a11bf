// Package group: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the group
// package. All functions return these sentinels and callers branch on them
// via errors.Is. Two classes are kept deliberately distinct:
//
//   - domain negatives — the table is well-shaped but fails a group axiom
//     (ErrNotClosed, ErrNotAssociative, ErrNoIdentity, ErrNoInverse);
//   - caller misuse    — the input itself is malformed
//     (ErrEmptyTable, ErrUnknownElement).
//
// A function may wrap a sentinel with fmt.Errorf("ctx: %w", ErrX) to attach
// the offending labels; errors.Is still matches.

package group

import "errors"

var (
	// ErrEmptyTable indicates a nil or empty table was passed where a
	// non-empty multiplication table is required. This is caller misuse,
	// not a mathematical negative: the empty structure has no carrier to
	// test axioms against.
	ErrEmptyTable = errors.New("group: table is nil or empty")

	// ErrUnknownElement indicates an element argument that is not a member
	// of the table's carrier set (its row keys). Caller misuse, distinct
	// from "no inverse exists".
	ErrUnknownElement = errors.New("group: element not in carrier set")

	// ErrNotClosed indicates a closure failure: a row is missing a column
	// for some carrier element, carries a column outside the carrier, or a
	// product label does not belong to the carrier set.
	ErrNotClosed = errors.New("group: table is not closed")

	// ErrNotAssociative indicates some ordered triple (a,b,c) with
	// (a∗b)∗c != a∗(b∗c).
	ErrNotAssociative = errors.New("group: operation is not associative")

	// ErrNoIdentity indicates no element acts as a two-sided identity.
	// This is a normal negative outcome, not a fault.
	ErrNoIdentity = errors.New("group: no identity element")

	// ErrNoInverse indicates some element has no two-sided inverse with
	// respect to the identity. Normal negative outcome.
	ErrNoInverse = errors.New("group: element has no inverse")
)
