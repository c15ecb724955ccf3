package record

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// FoldName returns the case-insensitive comparison form of s.
//
// The string is NFC-normalised first so that precomposed and decomposed
// accents ("estéril") fold to the same key.
func FoldName(s string) string {
	// cases.Caser is stateful; a fresh one per call keeps FoldName safe to share.
	return cases.Fold().String(norm.NFC.String(s))
}

// ByName keys a record by its folded name.
func ByName(r Record) string { return FoldName(r.name) }

// ByQuantity keys a record by its quantity.
func ByQuantity(r Record) int { return r.quantity }

// ByCategory keys a record by its folded category.
func ByCategory(r Record) string { return FoldName(r.category) }

// ByExpiry keys a record by expiry in Unix seconds. Records without an
// expiry get math.MaxInt64 and therefore sort after every dated record.
//
// Seconds, not nanoseconds: UnixNano overflows outside 1678-2262.
func ByExpiry(r Record) int64 {
	if !r.expiry.set {
		return math.MaxInt64
	}
	return r.expiry.at.Unix()
}

// WithExpiry returns a new slice holding only the records that carry an expiry.
func WithExpiry(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.expiry.set {
			out = append(out, r)
		}
	}
	return out
}
