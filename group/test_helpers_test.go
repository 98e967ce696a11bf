package group_test

import "github.com/katalvlaran/caylath/group"

// cyclic3 returns the cyclic group of order 3 with labels e, a, b:
// the canonical well-formed fixture (a and b invert each other).
func cyclic3() group.Table {
	return group.Table{
		"e": {"e": "e", "a": "a", "b": "b"},
		"a": {"e": "a", "a": "b", "b": "e"},
		"b": {"e": "b", "a": "e", "b": "a"},
	}
}

// trivial returns the one-element group {e}.
func trivial() group.Table {
	return group.Table{"e": {"e": "e"}}
}

// brokenClosure returns cyclic3 with a∗b rewritten to a label outside the
// carrier set.
func brokenClosure() group.Table {
	t := cyclic3()
	t["a"]["b"] = "z"

	return t
}

// noIdentity returns a closed, associative two-element table with no
// two-sided identity: the operation is constant (everything maps to a).
func noIdentity() group.Table {
	return group.Table{
		"a": {"a": "a", "b": "a"},
		"b": {"a": "a", "b": "a"},
	}
}

// nonAssociative returns a three-element table that is closed, has
// identity e and two-sided inverses for every element, yet violates
// associativity: (a∗a)∗b == b while a∗(a∗b) == e.
func nonAssociative() group.Table {
	return group.Table{
		"e": {"e": "e", "a": "a", "b": "b"},
		"a": {"e": "a", "a": "e", "b": "a"},
		"b": {"e": "b", "a": "b", "b": "e"},
	}
}
