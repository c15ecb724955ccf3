// Package dataset supplies record batches to the rest of the toolkit.
//
// Two sources are available:
//   - Generate fabricates a reproducible synthetic batch from a seed
//   - Load/Parse read a YAML document and validate it against the embedded
//     CUE schema (schema.cue) before any Record is built
//
// YAML document shape:
//
//	records:
//	  - name: Seringa 5ml
//	    quantity: 12
//	    category: PCR
//	    expiry: 2026-03-01      # optional; YYYY-MM-DD or RFC 3339
package dataset
