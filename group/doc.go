// Package group validates finite multiplication (Cayley) tables against the
// four group axioms and derives identity, inverses and related structure.
//
// 🚀 What does it check?
//
//	Given a Table t where t[a][b] is the product a∗b, the validator tests,
//	in order and stopping at the first failure:
//	  1. Closure      — every product is a carrier element
//	  2. Associativity — (a∗b)∗c == a∗(b∗c) for every ordered triple
//	  3. Identity     — some e with e∗a == a∗e == a for all a
//	  4. Inverses     — every a has b with a∗b == b∗a == e
//
// ✨ Key properties:
//   - Total over any map-shaped input: a missing entry fails closure, it
//     never panics or feeds undefined lookups into later passes
//   - Domain negatives (not closed, no identity, no inverse) are reported
//     as sentinel errors; only caller misuse (nil table, foreign element)
//     is a distinct error class — branch with errors.Is
//   - Deterministic: the carrier set is iterated in sorted label order, so
//     "first found" outcomes are reproducible
//   - Pure: the table is never mutated nor retained across calls, and every
//     call is independently safe from concurrent goroutines
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/caylath/group"
//
//	t := group.Table{
//	  "e": {"e": "e", "a": "a", "b": "b"},
//	  "a": {"e": "a", "a": "b", "b": "e"},
//	  "b": {"e": "b", "a": "e", "b": "a"},
//	}
//	if err := group.Validate(t); err != nil {
//	  // errors.Is(err, group.ErrNotAssociative), etc.
//	}
//	e, _ := group.FindIdentity(t)   // "e"
//	inv, _ := group.FindInverse(t, "a") // "b"
//
// Performance:
//
//   - Time: O(n³) dominated by the exhaustive associativity pass over all
//     ordered triples. Inputs are expected to be small, human-curated
//     tables; callers with unbounded carriers should cap n themselves.
//   - Memory: O(n) for the sorted carrier snapshot.
//
// See example_test.go for runnable scenarios.
package group
