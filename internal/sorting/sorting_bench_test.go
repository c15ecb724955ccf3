package sorting_test

import (
	"math/rand/v2"
	"testing"

	"github.com/roach88/insumos/internal/sorting"
)

// Sink variable to prevent compiler from eliminating benchmark loops
var sinkInts []int

func identity(v int) int { return v }

func benchInput(n int) []int {
	rng := rand.New(rand.NewPCG(42, 42))
	in := make([]int, n)
	for i := range in {
		in[i] = rng.IntN(n)
	}
	return in
}

func BenchmarkMergeSort_1K(b *testing.B) {
	in := benchInput(1024)
	b.ReportAllocs()
	b.ResetTimer()

	var out []int
	for i := 0; i < b.N; i++ {
		out = sorting.MergeSort(in, identity)
	}
	sinkInts = out
}

func BenchmarkQuickSort_1K(b *testing.B) {
	in := benchInput(1024)
	pivots := sorting.NewPivotSource(1)
	b.ReportAllocs()
	b.ResetTimer()

	var out []int
	for i := 0; i < b.N; i++ {
		out = sorting.QuickSort(in, identity, pivots)
	}
	sinkInts = out
}
