package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/insumos/internal/dataset"
	"github.com/roach88/insumos/internal/sorting"
	"github.com/roach88/insumos/internal/timeline"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	DataFile string // YAML dataset; empty means generate one
	Count    int    // generated batch size
	Seed     uint64 // generator and pivot seed

	// Clock, IDs, Now and Pivots override the runtime sources of time and
	// randomness (for testing). Nil values use the defaults.
	Clock  timeline.Clock
	IDs    timeline.IDGenerator
	Now    func() time.Time
	Pivots sorting.PivotSource
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the insumos CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insumos",
		Short: "insumos - consumable supply records toolkit",
		Long: `Organise and query daily consumption of diagnostic supplies (reagents
and disposables) with classic in-memory structures: a FIFO consumption queue,
a LIFO lookup stack, linear and binary search, merge sort and quick sort.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Count < 0 {
				return NewExitError(ExitCommandError, "--count must not be negative")
			}
			configureLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DataFile, "data", "", "YAML dataset to load instead of generating records")
	cmd.PersistentFlags().IntVar(&opts.Count, "count", 12, "number of records to generate")
	cmd.PersistentFlags().Uint64Var(&opts.Seed, "seed", dataset.DefaultSeed, "seed for generated records and quick sort pivots")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewSortCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewQueueCommand(opts))
	cmd.AddCommand(NewStackCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
// Failures are reported on stderr, or as a JSON error envelope on stdout
// when --format json is in effect.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	code := GetExitCode(err)
	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: "json", Writer: stdout}
		_ = formatter.Error(errorCode(code), err.Error(), nil)
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return code
}

// configureLogging installs the process-wide slog handler.
func configureLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

func (o *RootOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o *RootOptions) pivots() sorting.PivotSource {
	if o.Pivots != nil {
		return o.Pivots
	}
	return sorting.NewPivotSource(o.Seed)
}

func (o *RootOptions) timelineOptions() []timeline.Option {
	return []timeline.Option{
		timeline.WithClock(o.Clock),
		timeline.WithIDGenerator(o.IDs),
	}
}
