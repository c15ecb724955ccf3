// Package cli implements the insumos command tree.
//
// The CLI is a thin caller around the core packages: it obtains a batch of
// records (generated from --seed, or loaded with --data), hands it to the
// timeline, search and sorting packages, and renders the results as text or
// as a JSON envelope (--format json).
//
// Commands:
//   - demo: the full walkthrough
//   - sort: merge or quick sort by a chosen key
//   - search: linear or binary lookup by name
//   - queue, stack: register records and drain them
//
// Time and randomness come from RootOptions hooks so tests get identical
// output on every run.
package cli
