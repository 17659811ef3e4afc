package harvest_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/goldgrid/grid"
	"github.com/katalvlaran/goldgrid/harvest"
)

// benchGrid builds a deterministic random grid with an open start:
// ~20% rocks, gold 0..9.
func benchGrid(b *testing.B, rows, cols int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			if (r != 0 || c != 0) && rng.Intn(5) == 0 {
				values[r][c] = -1
			} else {
				values[r][c] = rng.Intn(10)
			}
		}
	}
	g, err := grid.FromValues(values)
	if err != nil {
		b.Fatalf("setup FromValues failed: %v", err)
	}

	return g
}

// BenchmarkDynProg measures the production solver on a 100×100 grid.
// Complexity: O(R·C·(R+C)).
func BenchmarkDynProg(b *testing.B) {
	g := benchGrid(b, 100, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := harvest.DynProg(g); err != nil {
			b.Fatalf("DynProg failed: %v", err)
		}
	}
}

// BenchmarkExhaustive measures the oracle on a 7×7 grid (2^12 enumerations
// at the top length). Complexity: O(2^L·L), L = 12.
func BenchmarkExhaustive(b *testing.B) {
	g := benchGrid(b, 7, 7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := harvest.Exhaustive(g); err != nil {
			b.Fatalf("Exhaustive failed: %v", err)
		}
	}
}
