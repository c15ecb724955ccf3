package sorting

import (
	"cmp"
	"math/rand/v2"
)

// PivotSource chooses pivot positions. *rand.Rand satisfies it.
type PivotSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewPivotSource returns a seeded PCG-backed source.
func NewPivotSource(seed uint64) PivotSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// QuickSort returns a copy of items sorted ascending by key.
//
// Each step takes the key of a random element as pivot and splits the input
// into less, equal and greater partitions. A nil pivots draws a fresh random
// seed. Expected O(n log n); O(n²) when pivots are consistently poor.
func QuickSort[T any, K cmp.Ordered](items []T, key func(T) K, pivots PivotSource) []T {
	if pivots == nil {
		pivots = NewPivotSource(rand.Uint64())
	}
	return quickSort(items, key, pivots)
}

func quickSort[T any, K cmp.Ordered](items []T, key func(T) K, pivots PivotSource) []T {
	if len(items) <= 1 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	pivot := key(items[pivots.IntN(len(items))])

	var less, equal, greater []T
	for _, it := range items {
		switch k := key(it); {
		case k < pivot:
			less = append(less, it)
		case k > pivot:
			greater = append(greater, it)
		default:
			equal = append(equal, it)
		}
	}

	out := make([]T, 0, len(items))
	out = append(out, quickSort(less, key, pivots)...)
	out = append(out, equal...)
	out = append(out, quickSort(greater, key, pivots)...)
	return out
}
