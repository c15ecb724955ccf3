package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/insumos/internal/record"
	"github.com/roach88/insumos/internal/sorting"
)

const (
	demoSampleSize   = 6
	demoTimelineSize = 5
	demoTopN         = 5
)

type demoReport struct {
	Total          int            `json:"total"`
	Sample         []recordView   `json:"sample"`
	Queue          timelineResult `json:"queue"`
	Stack          timelineResult `json:"stack"`
	LinearSearch   searchResult   `json:"linear_search"`
	BinarySearch   searchResult   `json:"binary_search"`
	LowestQuantity []recordView   `json:"lowest_quantity"`
	NearestExpiry  []recordView   `json:"nearest_expiry"`

	sample         []record.Record
	lowestQuantity []record.Record
	nearestExpiry  []record.Record
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the full walkthrough",
		Long: `Run every structure and algorithm over one dataset:

  1. print a sample of the unsorted records
  2. register the first five in the consumption queue and drain it (FIFO)
  3. push the first five onto the lookup stack and pop it (LIFO)
  4. search for the first record's name, linearly and by binary search
  5. list the five lowest quantities (merge sort)
  6. list the five nearest expiries among dated records (quick sort)

Example:
  insumos demo --count 12 --seed 42`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd)
		},
	}

	return cmd
}

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	records, err := loadRecords(opts)
	if err != nil {
		return err
	}

	report := buildDemo(opts, records)

	return opts.formatter(cmd).Render(report, func(w io.Writer) {
		writeDemo(w, report)
	})
}

func buildDemo(opts *RootOptions, records []record.Record) demoReport {
	report := demoReport{Total: len(records)}

	report.sample = head(records, demoSampleSize)
	report.Sample = viewRecords(report.sample)

	first := head(records, demoTimelineSize)
	report.Queue = runQueue(opts, first)
	report.Stack = runStack(opts, first)

	var target string
	if len(records) > 0 {
		target = records[0].Name()
	}
	report.LinearSearch = find(SearchLinear, records, target)
	report.BinarySearch = find(SearchBinary, records, target)

	byQuantity := sorting.MergeSort(records, record.ByQuantity)
	report.lowestQuantity = head(byQuantity, demoTopN)
	report.LowestQuantity = viewRecords(report.lowestQuantity)

	byExpiry := sorting.QuickSort(record.WithExpiry(records), record.ByExpiry, opts.pivots())
	report.nearestExpiry = head(byExpiry, demoTopN)
	report.NearestExpiry = viewRecords(report.nearestExpiry)

	return report
}

func writeDemo(w io.Writer, report demoReport) {
	fmt.Fprintln(w, "=== Consumable supplies walkthrough ===")

	fmt.Fprintf(w, "\nSample records (%d of %d, unsorted):\n", len(report.sample), report.Total)
	writeRecords(w, report.sample)

	fmt.Fprintln(w)
	writeTimeline(w, report.Queue)

	fmt.Fprintln(w)
	writeTimeline(w, report.Stack)

	fmt.Fprintln(w)
	writeSearchResult(w, report.LinearSearch)
	writeSearchResult(w, report.BinarySearch)

	fmt.Fprintf(w, "\nLowest %d quantities (merge sort):\n", demoTopN)
	writeRecords(w, report.lowestQuantity)

	fmt.Fprintf(w, "\nNearest %d expiries (quick sort):\n", demoTopN)
	writeRecords(w, report.nearestExpiry)

	fmt.Fprintln(w, "\nEnd of walkthrough.")
}
