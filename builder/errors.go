// SPDX-License-Identifier: MIT
// Package: caylath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Constructors attach context via fmt.Errorf("Method: ...: %w", ErrX).
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewElements indicates that the requested order is below the
// constructor's minimum (Cyclic needs n ≥ 1, Dihedral needs n ≥ 3).
// Usage: if errors.Is(err, ErrTooFewElements) { /* report invalid size */ }.
var ErrTooFewElements = errors.New("builder: order too small")

// ErrLabelCount indicates that WithLabels supplied a label slice whose
// length does not match the constructor's carrier size.
// Usage: if errors.Is(err, ErrLabelCount) { /* fix label count */ }.
var ErrLabelCount = errors.New("builder: wrong number of labels")

// ErrDuplicateLabel indicates that WithLabels supplied the same label for
// two distinct carrier positions; table rows would collide.
// Usage: if errors.Is(err, ErrDuplicateLabel) { /* deduplicate labels */ }.
var ErrDuplicateLabel = errors.New("builder: duplicate label")

// ErrEmptyLabel indicates that WithLabels supplied an empty string; empty
// labels are indistinguishable from missed lookups downstream.
// Usage: if errors.Is(err, ErrEmptyLabel) { /* supply non-empty labels */ }.
var ErrEmptyLabel = errors.New("builder: empty label")

// ErrNotGroup indicates that a factor passed to DirectProduct failed
// group.Validate; the product of a non-group is undefined. The wrapped
// chain retains the factor's own axiom sentinel.
// Usage: if errors.Is(err, ErrNotGroup) { /* validate factors first */ }.
var ErrNotGroup = errors.New("builder: factor is not a valid group")
