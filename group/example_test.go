package group_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/caylath/group"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleValidate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Validate the cyclic group of order 3 given as a hand-written table,
//	then report its identity and the inverse of a.
//
// Use case:
//
//	Checking a user-entered multiplication table before storing or
//	displaying it.
//
// Complexity: O(n³) time, O(n) memory
func ExampleValidate() {
	t := group.Table{
		"e": {"e": "e", "a": "a", "b": "b"},
		"a": {"e": "a", "a": "b", "b": "e"},
		"b": {"e": "b", "a": "e", "b": "a"},
	}

	fmt.Println("valid:", group.IsValid(t))

	e, _ := group.FindIdentity(t)
	fmt.Println("identity:", e)

	inv, _ := group.FindInverse(t, "a")
	fmt.Println("inverse of a:", inv)
	// Output:
	// valid: true
	// identity: e
	// inverse of a: b
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleValidate_diagnostics
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A table whose entry a∗b points at a label outside the carrier set.
//	Validate names the failing axiom; errors.Is separates the domain
//	negative from caller misuse.
//
// Complexity: O(n²) time (fails during the closure pass)
func ExampleValidate_diagnostics() {
	t := group.Table{
		"e": {"e": "e", "a": "a", "b": "b"},
		"a": {"e": "a", "a": "b", "b": "z"},
		"b": {"e": "b", "a": "e", "b": "a"},
	}

	err := group.Validate(t)
	fmt.Println("not closed:", errors.Is(err, group.ErrNotClosed))
	fmt.Println("misuse:", errors.Is(err, group.ErrEmptyTable))
	// Output:
	// not closed: true
	// misuse: false
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInverses
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Derive the full inverse map of a valid table in one call.
//
// Complexity: O(n³) time (validation dominates)
func ExampleInverses() {
	t := group.Table{
		"e": {"e": "e", "a": "a", "b": "b"},
		"a": {"e": "a", "a": "b", "b": "e"},
		"b": {"e": "b", "a": "e", "b": "a"},
	}

	inv, _ := group.Inverses(t)
	for _, a := range group.Elements(t) {
		fmt.Printf("%s⁻¹ = %s\n", a, inv[a])
	}
	// Output:
	// a⁻¹ = b
	// b⁻¹ = a
	// e⁻¹ = e
}
