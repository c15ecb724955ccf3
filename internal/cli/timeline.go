package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/insumos/internal/record"
	"github.com/roach88/insumos/internal/timeline"
)

// TimelineOptions holds flags for the queue and stack commands.
type TimelineOptions struct {
	*RootOptions
	Take int
}

type timelineResult struct {
	Container  string      `json:"container"`
	Discipline string      `json:"discipline"`
	Registered []entryView `json:"registered"`
	Drained    []entryView `json:"drained"`
}

// NewQueueCommand creates the queue command.
func NewQueueCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TimelineOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Register consumption events and drain them in FIFO order",
		Long: `Register the first --take records in the consumption queue, list the
timestamped entries, then drain the queue. Entries leave in the order they
were registered.

Example:
  insumos queue --take 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimeline(opts, cmd, "queue")
		},
	}

	cmd.Flags().IntVar(&opts.Take, "take", 5, "number of records to register")

	return cmd
}

// NewStackCommand creates the stack command.
func NewStackCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TimelineOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stack",
		Short: "Push lookups and replay them in LIFO order",
		Long: `Push the first --take records onto the lookup stack, list the
timestamped entries bottom to top, then pop until empty. The most recent
lookup comes back first.

Example:
  insumos stack --take 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimeline(opts, cmd, "stack")
		},
	}

	cmd.Flags().IntVar(&opts.Take, "take", 5, "number of records to push")

	return cmd
}

func runTimeline(opts *TimelineOptions, cmd *cobra.Command, container string) error {
	if opts.Take < 0 {
		return NewExitError(ExitCommandError, "--take must not be negative")
	}

	records, err := loadRecords(opts.RootOptions)
	if err != nil {
		return err
	}
	taken := head(records, opts.Take)
	if opts.Take == 0 {
		taken = nil
	}

	var result timelineResult
	if container == "queue" {
		result = runQueue(opts.RootOptions, taken)
	} else {
		result = runStack(opts.RootOptions, taken)
	}
	slog.Debug("timeline drained", "container", container, "entries", len(result.Drained))

	return opts.formatter(cmd).Render(result, func(w io.Writer) {
		writeTimeline(w, result)
	})
}

func runQueue(opts *RootOptions, records []record.Record) timelineResult {
	q := timeline.NewQueue(opts.timelineOptions()...)
	for _, r := range records {
		q.Register(r)
	}
	registered := q.Entries()

	drained := make([]timeline.Entry, 0, q.Len())
	for {
		e, ok := q.Next()
		if !ok {
			break
		}
		drained = append(drained, e)
	}

	return timelineResult{
		Container:  "queue",
		Discipline: "FIFO",
		Registered: viewEntries(registered),
		Drained:    viewEntries(drained),
	}
}

func runStack(opts *RootOptions, records []record.Record) timelineResult {
	s := timeline.NewStack(opts.timelineOptions()...)
	for _, r := range records {
		s.Push(r)
	}
	registered := s.Entries()

	drained := make([]timeline.Entry, 0, s.Len())
	for {
		e, ok := s.Pop()
		if !ok {
			break
		}
		drained = append(drained, e)
	}

	return timelineResult{
		Container:  "stack",
		Discipline: "LIFO",
		Registered: viewEntries(registered),
		Drained:    viewEntries(drained),
	}
}

func writeTimeline(w io.Writer, result timelineResult) {
	fmt.Fprintf(w, "Registered %d entries in the %s:\n", len(result.Registered), result.Container)
	for _, e := range result.Registered {
		fmt.Fprintf(w, "  %s  %s  %s\n", e.At.Format("15:04:05"), e.ID, e.Record.Name)
	}
	fmt.Fprintf(w, "Drain order (%s):\n", result.Discipline)
	for i, e := range result.Drained {
		fmt.Fprintf(w, "  %d. %s\n", i+1, e.Record.Name)
	}
}
