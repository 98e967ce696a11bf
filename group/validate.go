package group

import "fmt"

// Validate — group axiom check with diagnostics.
//
// Description:
//
//	Validate tests whether t is the multiplication table of a finite group.
//	The carrier set is derived once (sorted row keys) and reused by every
//	pass, and the checks run in a fixed order, stopping at the first
//	failure:
//
//	 1. Closure: every row holds exactly the carrier's columns and every
//	    product is a carrier element. This pass runs first so that later
//	    passes may index t freely without hitting missing keys.
//	 2. Associativity: (a∗b)∗c == a∗(b∗c) for every ordered triple drawn
//	    from the carrier with repetition — an exhaustive O(n³) sweep.
//	 3. Identity: some e with e∗a == a∗e == a for all a.
//	 4. Inverses: every a has b with a∗b == b∗a == e, using the identity
//	    found in step 3.
//
// Returns nil when all four axioms hold, or the first failing axiom's
// sentinel wrapped with the offending labels. A nil/empty table yields
// ErrEmptyTable (caller misuse, not a domain negative).
//
// Complexity:
//
//	Time   = O(n³) (associativity dominates)
//	Memory = O(n)
//
// Errors:
//   - ErrEmptyTable     — t is nil or has no rows.
//   - ErrNotClosed      — missing/foreign column or foreign product.
//   - ErrNotAssociative — some triple violates associativity.
//   - ErrNoIdentity     — no two-sided identity element.
//   - ErrNoInverse      — some element lacks a two-sided inverse.
func Validate(t Table) error {
	if len(t) == 0 {
		return ErrEmptyTable
	}

	elems := Elements(t)

	if err := checkClosure(t, elems); err != nil {
		return err
	}
	if err := checkAssociativity(t, elems); err != nil {
		return err
	}
	e, ok := searchIdentity(t, elems)
	if !ok {
		return ErrNoIdentity
	}

	return checkInverses(t, elems, e)
}

// IsValid reports whether t satisfies all four group axioms. It is the
// boolean form of Validate; use Validate when the failing axiom matters.
//
// Time Complexity: O(n³)
func IsValid(t Table) bool {
	return Validate(t) == nil
}

// checkClosure verifies that each row of t covers exactly the carrier set
// and that every product lands inside it. After this pass succeeds, any
// t[a][b] with carrier a, b is a valid lookup yielding a carrier element.
func checkClosure(t Table, elems []string) error {
	n := len(elems)
	for _, a := range elems {
		row := t[a]
		// Equal size plus full coverage below implies key-set equality,
		// so a stray extra column is caught here too.
		if len(row) != n {
			return fmt.Errorf("Validate: row %q has %d columns, want %d: %w", a, len(row), n, ErrNotClosed)
		}
		for _, b := range elems {
			p, ok := row[b]
			if !ok {
				return fmt.Errorf("Validate: row %q: missing column %q: %w", a, b, ErrNotClosed)
			}
			if _, member := t[p]; !member {
				return fmt.Errorf("Validate: %q∗%q = %q outside carrier: %w", a, b, p, ErrNotClosed)
			}
		}
	}

	return nil
}

// checkAssociativity sweeps every ordered triple. Requires checkClosure to
// have passed, so nested lookups cannot miss.
func checkAssociativity(t Table, elems []string) error {
	for _, a := range elems {
		for _, b := range elems {
			ab := t[a][b]
			for _, c := range elems {
				if t[ab][c] != t[a][t[b][c]] {
					return fmt.Errorf("Validate: (%s∗%s)∗%s != %s∗(%s∗%s): %w", a, b, c, a, b, c, ErrNotAssociative)
				}
			}
		}
	}

	return nil
}

// searchIdentity scans the carrier in sorted order for a two-sided identity
// and returns the first match. It tolerates malformed tables: a missing
// nested lookup yields "" which simply fails the candidate, so the scan is
// total even before closure has been established.
func searchIdentity(t Table, elems []string) (string, bool) {
	for _, e := range elems {
		ok := true
		for _, a := range elems {
			if t[e][a] != a || t[a][e] != a {
				ok = false
				break
			}
		}
		if ok {
			return e, true
		}
	}

	return "", false
}

// checkInverses verifies that every element has a two-sided inverse with
// respect to identity e.
func checkInverses(t Table, elems []string, e string) error {
	for _, a := range elems {
		if _, ok := searchInverse(t, elems, a, e); !ok {
			return fmt.Errorf("Validate: element %q: %w", a, ErrNoInverse)
		}
	}

	return nil
}

// searchInverse scans the carrier in sorted order for b with
// a∗b == b∗a == e, returning the first match.
func searchInverse(t Table, elems []string, a, e string) (string, bool) {
	for _, b := range elems {
		if t[a][b] == e && t[b][a] == e {
			return b, true
		}
	}

	return "", false
}
