// Package sorting provides merge sort and quick sort over any slice, ordered
// by a caller-supplied key.
//
// Both routines return a new slice and never modify their input. MergeSort
// is stable. QuickSort picks a random pivot per partition step from an
// injected PivotSource; it makes no stability promise.
package sorting
