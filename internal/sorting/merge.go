package sorting

import "cmp"

// MergeSort returns a copy of items sorted ascending by key.
// Equal keys keep their input order.
func MergeSort[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	if len(items) <= 1 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	mid := len(items) / 2
	left := MergeSort(items[:mid], key)
	right := MergeSort(items[mid:], key)
	return merge(left, right, key)
}

func merge[T any, K cmp.Ordered](a, b []T, key func(T) K) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		// <= keeps the left element first on ties.
		if key(a[i]) <= key(b[j]) {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
