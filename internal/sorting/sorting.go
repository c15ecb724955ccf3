package sorting

import (
	"cmp"
	"fmt"
	"strings"
)

// Algorithm names a sort strategy.
type Algorithm string

const (
	// Merge is the stable merge sort.
	Merge Algorithm = "merge"
	// Quick is the randomized-pivot quick sort.
	Quick Algorithm = "quick"
)

// Algorithms lists the accepted Algorithm values.
var Algorithms = []Algorithm{Merge, Quick}

// ParseAlgorithm maps a name to an Algorithm, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case Merge:
		return Merge, nil
	case Quick:
		return Quick, nil
	default:
		return "", fmt.Errorf("unknown sort algorithm %q: must be one of %v", name, Algorithms)
	}
}

// Stable reports whether the algorithm guarantees equal keys keep input order.
func (a Algorithm) Stable() bool {
	return a == Merge
}

// Sort dispatches to the selected algorithm. pivots is only used by Quick.
func Sort[T any, K cmp.Ordered](alg Algorithm, items []T, key func(T) K, pivots PivotSource) ([]T, error) {
	switch alg {
	case Merge:
		return MergeSort(items, key), nil
	case Quick:
		return QuickSort(items, key, pivots), nil
	default:
		return nil, fmt.Errorf("unknown sort algorithm %q", alg)
	}
}

// IsSorted reports whether items are in non-decreasing key order.
func IsSorted[T any, K cmp.Ordered](items []T, key func(T) K) bool {
	for i := 1; i < len(items); i++ {
		if key(items[i]) < key(items[i-1]) {
			return false
		}
	}
	return true
}
