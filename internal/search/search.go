// Package search looks up records by name, case-insensitively.
//
// Linear works on any slice. Binary requires the slice to be sorted
// ascending by record.ByName; on unsorted input its result is undefined.
// Neither routine validates its input.
package search

import "github.com/roach88/insumos/internal/record"

// Linear returns the first record whose name matches target.
func Linear(records []record.Record, target string) (record.Record, bool) {
	i := LinearIndex(records, target)
	if i < 0 {
		return record.Record{}, false
	}
	return records[i], true
}

// LinearIndex returns the index of the first match, or -1.
func LinearIndex(records []record.Record, target string) int {
	want := record.FoldName(target)
	for i, r := range records {
		if record.ByName(r) == want {
			return i
		}
	}
	return -1
}

// Binary returns a record whose name matches target from a slice sorted by
// record.ByName.
//
// When several records share the name, which one is returned depends on how
// the interval collapses and is not specified.
func Binary(sorted []record.Record, target string) (record.Record, bool) {
	i := BinaryIndex(sorted, target)
	if i < 0 {
		return record.Record{}, false
	}
	return sorted[i], true
}

// BinaryIndex returns the index of a match in sorted, or -1.
func BinaryIndex(sorted []record.Record, target string) int {
	want := record.FoldName(target)
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		got := record.ByName(sorted[mid])
		switch {
		case got == want:
			return mid
		case got < want:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}
