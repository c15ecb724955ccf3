package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/insumos/internal/record"
	"github.com/roach88/insumos/internal/search"
	"github.com/roach88/insumos/internal/sorting"
)

// Search algorithms accepted by --algo.
const (
	SearchLinear = "linear"
	SearchBinary = "binary"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Algorithm string
}

type searchResult struct {
	Query     string      `json:"query"`
	Algorithm string      `json:"algorithm"`
	Found     bool        `json:"found"`
	Index     int         `json:"index"`
	Record    *recordView `json:"record,omitempty"`

	match record.Record
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Find a record by name (case-insensitive)",
		Long: `Find a record by material name, ignoring case.

linear scans the dataset in order and returns the first match.
binary first merge-sorts the dataset by name, then halves the interval;
with duplicate names any one of them may be returned, and the reported
index refers to the name-sorted order.

A miss is not an error: the command reports "not found" and exits 0.

Example:
  insumos search "seringa 5ml"
  insumos search "SWAB ESTÉRIL" --algo binary`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Algorithm, "algo", SearchLinear, "search algorithm (linear|binary)")

	return cmd
}

func runSearch(opts *SearchOptions, name string, cmd *cobra.Command) error {
	algo := strings.ToLower(opts.Algorithm)
	if algo != SearchLinear && algo != SearchBinary {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid --algo %q: must be %s or %s", opts.Algorithm, SearchLinear, SearchBinary))
	}

	records, err := loadRecords(opts.RootOptions)
	if err != nil {
		return err
	}

	result := find(algo, records, name)
	slog.Debug("search finished", "query", name, "algorithm", algo, "found", result.Found)

	return opts.formatter(cmd).Render(result, func(w io.Writer) {
		writeSearchResult(w, result)
	})
}

// find runs one search. Binary search sorts by name first.
func find(algo string, records []record.Record, name string) searchResult {
	result := searchResult{Query: name, Algorithm: algo, Index: -1}

	haystack := records
	var idx int
	if algo == SearchBinary {
		haystack = sorting.MergeSort(records, record.ByName)
		idx = search.BinaryIndex(haystack, name)
	} else {
		idx = search.LinearIndex(haystack, name)
	}

	if idx >= 0 {
		v := viewRecord(haystack[idx])
		result.Found = true
		result.Index = idx
		result.Record = &v
		result.match = haystack[idx]
	}
	return result
}

func writeSearchResult(w io.Writer, result searchResult) {
	label := strings.ToUpper(result.Algorithm[:1]) + result.Algorithm[1:]
	if !result.Found {
		fmt.Fprintf(w, "%s search for %q: not found\n", label, result.Query)
		return
	}
	fmt.Fprintf(w, "%s search for %q: found at index %d\n", label, result.Query, result.Index)
	fmt.Fprintf(w, "  %s\n", formatRecord(result.match))
}
