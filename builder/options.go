// SPDX-License-Identifier: MIT
// Package: caylath/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (programmer error); data-dependent validation (count vs carrier
//     size, duplicates) surfaces as sentinels at build time instead.
//   • No hidden globals; everything flows through config.

package builder

// Option customizes a constructor by mutating a config instance before
// table construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config carries the resolved per-call settings for one constructor.
type config struct {
	// labels overrides the constructor's canonical label scheme when
	// non-nil. Length and uniqueness are validated at build time against
	// the carrier size of the specific constructor.
	labels []string
}

// newConfig applies opts over the zero config and returns the result.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLabels replaces a constructor's canonical element labels. The slice
// is positional: label i names carrier position i in the constructor's
// documented element order (e.g. Cyclic: identity first, then ascending
// powers of the generator).
//
// Panics when called with no labels — an empty override is programmer
// error. Count mismatches, duplicates and empty strings are reported at
// build time as ErrLabelCount / ErrDuplicateLabel / ErrEmptyLabel.
// Complexity: O(len(labels)) copy, O(1) space beyond it.
func WithLabels(labels ...string) Option {
	if len(labels) == 0 {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithLabels() without labels")
	}
	return func(c *config) {
		// Copy to keep the config insulated from caller mutation.
		c.labels = append([]string(nil), labels...)
	}
}
