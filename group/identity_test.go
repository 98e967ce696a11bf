package group_test

import (
	"testing"

	"github.com/katalvlaran/caylath/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindIdentity_Cyclic3 verifies the identity of the canonical order-3
// table is e.
func TestFindIdentity_Cyclic3(t *testing.T) {
	e, err := group.FindIdentity(cyclic3())

	require.NoError(t, err)
	assert.Equal(t, "e", e)
}

// TestFindIdentity_Trivial verifies the boundary case: in {e: {e: e}} the
// sole element is its own identity.
func TestFindIdentity_Trivial(t *testing.T) {
	e, err := group.FindIdentity(trivial())

	require.NoError(t, err)
	assert.Equal(t, "e", e)
}

// TestFindIdentity_NotFound verifies the normal negative outcome: no
// element qualifies, reported as ErrNoIdentity rather than a fault.
func TestFindIdentity_NotFound(t *testing.T) {
	_, err := group.FindIdentity(noIdentity())

	assert.ErrorIs(t, err, group.ErrNoIdentity)
}

// TestFindIdentity_EmptyTable verifies the misuse class stays distinct
// from the negative outcome.
func TestFindIdentity_EmptyTable(t *testing.T) {
	_, err := group.FindIdentity(nil)

	assert.ErrorIs(t, err, group.ErrEmptyTable)
	assert.NotErrorIs(t, err, group.ErrNoIdentity, "misuse must not read as a domain negative")
}

// TestFindIdentity_MalformedTableIsTotal verifies the search tolerates
// missing entries: a gap disqualifies candidates, it never panics.
func TestFindIdentity_MalformedTableIsTotal(t *testing.T) {
	tbl := cyclic3()
	delete(tbl["e"], "a")

	_, err := group.FindIdentity(tbl)
	assert.ErrorIs(t, err, group.ErrNoIdentity, "gap in the identity row disqualifies e")
}

// TestFindInverse_Cyclic3 verifies a and b invert each other and e inverts
// itself in Z_3.
func TestFindInverse_Cyclic3(t *testing.T) {
	tbl := cyclic3()

	inv, err := group.FindInverse(tbl, "a")
	require.NoError(t, err)
	assert.Equal(t, "b", inv)

	inv, err = group.FindInverse(tbl, "e")
	require.NoError(t, err)
	assert.Equal(t, "e", inv)
}

// TestFindInverse_Involutive verifies the inverse of the inverse is the
// original element, for every carrier element.
func TestFindInverse_Involutive(t *testing.T) {
	tbl := cyclic3()

	for _, a := range group.Elements(tbl) {
		b, err := group.FindInverse(tbl, a)
		require.NoError(t, err)

		back, err := group.FindInverse(tbl, b)
		require.NoError(t, err)
		assert.Equal(t, a, back, "inverse must be involutive for %q", a)
	}
}

// TestFindInverse_UnknownElement verifies that an argument outside the
// carrier set is caller misuse, not a "no inverse" negative.
func TestFindInverse_UnknownElement(t *testing.T) {
	_, err := group.FindInverse(cyclic3(), "z")

	assert.ErrorIs(t, err, group.ErrUnknownElement)
	assert.NotErrorIs(t, err, group.ErrNoInverse, "misuse must not read as a domain negative")
}

// TestFindInverse_NoIdentity verifies inversion is ill-defined without an
// identity and says so explicitly.
func TestFindInverse_NoIdentity(t *testing.T) {
	_, err := group.FindInverse(noIdentity(), "a")

	assert.ErrorIs(t, err, group.ErrNoIdentity)
}

// TestFindInverse_EmptyTable verifies nil/empty input is rejected before
// any carrier membership question arises.
func TestFindInverse_EmptyTable(t *testing.T) {
	_, err := group.FindInverse(nil, "a")

	assert.ErrorIs(t, err, group.ErrEmptyTable)
}

// TestFindInverse_NoInverse verifies the normal negative: identity exists
// but the element cannot be inverted.
func TestFindInverse_NoInverse(t *testing.T) {
	// Multiplication monoid on {0, 1}: identity "1", "0" not invertible.
	tbl := group.Table{
		"0": {"0": "0", "1": "0"},
		"1": {"0": "0", "1": "1"},
	}

	_, err := group.FindInverse(tbl, "0")
	assert.ErrorIs(t, err, group.ErrNoInverse)
}

// TestInverses_Cyclic3 verifies the full inverse map of Z_3.
func TestInverses_Cyclic3(t *testing.T) {
	inv, err := group.Inverses(cyclic3())

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"e": "e", "a": "b", "b": "a"}, inv)
}

// TestInverses_RequiresValidGroup verifies the inverse map is refused for
// tables failing any axiom, propagating the failing sentinel.
func TestInverses_RequiresValidGroup(t *testing.T) {
	_, err := group.Inverses(brokenClosure())
	assert.ErrorIs(t, err, group.ErrNotClosed)

	_, err = group.Inverses(nonAssociative())
	assert.ErrorIs(t, err, group.ErrNotAssociative)
}
