package group

import "fmt"

// FindIdentity searches the carrier set of t for a two-sided identity:
// an element e with t[e][a] == a and t[a][e] == a for every carrier a.
//
// The carrier is scanned in sorted order and the first qualifying element
// is returned; a well-formed group has exactly one, and for a malformed
// table with several the sorted order pins which one wins. The scan is
// total over any map-shaped input — missing entries simply disqualify a
// candidate, they are never an exceptional condition.
//
// Errors:
//   - ErrEmptyTable — t is nil or empty (caller misuse).
//   - ErrNoIdentity — no element qualifies (normal negative outcome).
//
// Time Complexity: O(n²)
func FindIdentity(t Table) (string, error) {
	if len(t) == 0 {
		return "", ErrEmptyTable
	}

	e, ok := searchIdentity(t, Elements(t))
	if !ok {
		return "", ErrNoIdentity
	}

	return e, nil
}

// FindInverse searches the carrier set of t for the inverse of x: an
// element b with t[x][b] == e and t[b][x] == e, where e is the identity
// located by FindIdentity. The first match in sorted carrier order is
// returned.
//
// Errors:
//   - ErrEmptyTable     — t is nil or empty (caller misuse).
//   - ErrUnknownElement — x is not a carrier element (caller misuse,
//     deliberately distinct from "no inverse exists").
//   - ErrNoIdentity     — inversion is ill-defined without an identity.
//   - ErrNoInverse      — no carrier element inverts x (normal negative).
//
// Time Complexity: O(n²) (dominated by the identity search)
func FindInverse(t Table, x string) (string, error) {
	if len(t) == 0 {
		return "", ErrEmptyTable
	}
	if _, ok := t[x]; !ok {
		return "", fmt.Errorf("FindInverse: %q: %w", x, ErrUnknownElement)
	}

	elems := Elements(t)
	e, ok := searchIdentity(t, elems)
	if !ok {
		return "", fmt.Errorf("FindInverse: %w", ErrNoIdentity)
	}

	b, ok := searchInverse(t, elems, x, e)
	if !ok {
		return "", fmt.Errorf("FindInverse: %q: %w", x, ErrNoInverse)
	}

	return b, nil
}

// Inverses returns the full inverse map of a valid group table: for every
// carrier element a, Inverses(t)[a] is the unique b with a∗b == b∗a == e.
// The map is freshly allocated on every call; t itself is untouched.
//
// The table is validated first — an inverse map over a non-group is not
// well-defined, so any Validate failure is returned as-is.
//
// Time Complexity: O(n³) (validation dominates)
func Inverses(t Table) (map[string]string, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}

	elems := Elements(t)
	// Validate passed, so identity and all inverses are guaranteed to exist.
	e, _ := searchIdentity(t, elems)

	inv := make(map[string]string, len(elems))
	for _, a := range elems {
		b, _ := searchInverse(t, elems, a, e)
		inv[a] = b
	}

	return inv, nil
}
