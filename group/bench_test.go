package group_test

import (
	"testing"

	"github.com/katalvlaran/caylath/builder"
	"github.com/katalvlaran/caylath/group"
)

// benchmarkValidate is a helper that validates Z_n in a loop. It builds
// the table once, resets the timer, and fails on unexpected errors, so the
// O(n³) associativity sweep dominates the measurement.
func benchmarkValidate(b *testing.B, n int) {
	tbl, err := builder.Cyclic(n)
	if err != nil {
		b.Fatalf("Cyclic(%d) failed: %v", n, err)
	}

	b.ResetTimer() // ignore construction time
	for i := 0; i < b.N; i++ {
		if err = group.Validate(tbl); err != nil {
			b.Fatalf("Validate failed: %v", err)
		}
	}
}

// BenchmarkValidate_Order8 benchmarks validation of Z_8.
func BenchmarkValidate_Order8(b *testing.B) {
	benchmarkValidate(b, 8)
}

// BenchmarkValidate_Order16 benchmarks validation of Z_16 (8× the triples
// of Z_8 — the cubic growth should be visible against Order8).
func BenchmarkValidate_Order16(b *testing.B) {
	benchmarkValidate(b, 16)
}

// BenchmarkValidate_Order32 benchmarks validation of Z_32.
func BenchmarkValidate_Order32(b *testing.B) {
	benchmarkValidate(b, 32)
}

// BenchmarkFindInverse_Order32 benchmarks a single inverse lookup in Z_32,
// dominated by the O(n²) identity search.
func BenchmarkFindInverse_Order32(b *testing.B) {
	tbl, err := builder.Cyclic(32)
	if err != nil {
		b.Fatalf("Cyclic(32) failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = group.FindInverse(tbl, "g1"); err != nil {
			b.Fatalf("FindInverse failed: %v", err)
		}
	}
}
