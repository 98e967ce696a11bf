package group

import "fmt"

// IsAbelian reports whether a valid group table is commutative:
// t[a][b] == t[b][a] for every carrier pair. The table is validated first;
// commutativity of a non-group is not a meaningful question, so any
// Validate failure is returned as-is.
//
// Time Complexity: O(n³) (validation dominates; the pair sweep is O(n²))
func IsAbelian(t Table) (bool, error) {
	if err := Validate(t); err != nil {
		return false, err
	}

	elems := Elements(t)
	for i, a := range elems {
		// Pairs below the diagonal mirror pairs above it; skip them.
		for _, b := range elems[i+1:] {
			if t[a][b] != t[b][a] {
				return false, nil
			}
		}
	}

	return true, nil
}

// ElementOrder returns the order of x in a valid group table: the least
// k ≥ 1 with x^k == e. By Lagrange's theorem k divides the group order, so
// the walk x, x², x³, … reaches e within Order(t) steps.
//
// Errors:
//   - any Validate failure of t
//   - ErrUnknownElement — x is not a carrier element.
//
// Time Complexity: O(n³) (validation dominates; the walk is O(n))
func ElementOrder(t Table, x string) (int, error) {
	if err := Validate(t); err != nil {
		return 0, err
	}
	if _, ok := t[x]; !ok {
		return 0, fmt.Errorf("ElementOrder: %q: %w", x, ErrUnknownElement)
	}

	e, _ := searchIdentity(t, Elements(t))

	k, p := 1, x
	for p != e {
		p = t[p][x]
		k++
	}

	return k, nil
}
