// Package record defines the consumable-material record shared by the
// timeline containers, the search routines and the sort routines.
//
// A Record is an immutable value: every field is unexported and set once by
// New. Records are copied by value between containers, so the same logical
// record may sit in a queue, a stack and a sorted slice at the same time.
//
// Name comparisons are case-insensitive everywhere. FoldName is the single
// definition of "case-insensitive" used by search and sort keys.
package record
