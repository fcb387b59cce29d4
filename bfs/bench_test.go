package bfs_test

import (
	"testing"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/bfs"
)

// BenchmarkSolve_Corridor measures a 1×6 corridor with dirt at the far end.
func BenchmarkSolve_Corridor(b *testing.B) {
	g := mustGrid(b, "XEEEED")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Solve(g)
	}
}

// BenchmarkSolve_Scattered measures a 4×4 grid with six dirty cells
// (16 × 2^6 configurations at most).
func BenchmarkSolve_Scattered(b *testing.B) {
	g := mustGrid(b,
		"XEDE",
		"EWED",
		"DEWE",
		"EDED",
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Solve(g)
	}
}

// BenchmarkSolve_ReachabilityCheck compares an unsolvable grid with and
// without the walled-off dirt pre-check.
func BenchmarkSolve_ReachabilityCheck(b *testing.B) {
	g := mustGrid(b,
		"XEEEW",
		"DEDEW",
		"EDEEW",
		"WWWWW",
		"EEEED",
	)

	b.Run("Check", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.Solve(g)
		}
	})
	b.Run("Exhaustive", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.Solve(g, bfs.WithReachabilityCheck(false))
		}
	})
}
