package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/roach88/insumos/internal/dataset"
	"github.com/roach88/insumos/internal/record"
	"github.com/roach88/insumos/internal/sorting"
	"github.com/roach88/insumos/internal/timeline"
)

// Sort keys accepted by --by.
const (
	KeyName     = "name"
	KeyQuantity = "quantity"
	KeyCategory = "category"
	KeyExpiry   = "expiry"
)

// ValidKeys lists the accepted --by values.
var ValidKeys = []string{KeyName, KeyQuantity, KeyCategory, KeyExpiry}

// expiryPlaceholder is printed for records without an expiry.
const expiryPlaceholder = "-"

// loadRecords returns the dataset selected by the global flags.
func loadRecords(opts *RootOptions) ([]record.Record, error) {
	if opts.DataFile != "" {
		records, err := dataset.Load(opts.DataFile)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load dataset", err)
		}
		slog.Info("dataset loaded", "path", opts.DataFile, "records", len(records))
		return records, nil
	}

	records := dataset.Generate(opts.Count, opts.Seed, opts.now())
	slog.Info("dataset generated", "records", len(records), "seed", opts.Seed)
	return records, nil
}

// sortBy sorts records by the named key with the chosen algorithm.
func sortBy(key string, alg sorting.Algorithm, records []record.Record, pivots sorting.PivotSource) ([]record.Record, error) {
	var (
		out []record.Record
		ok  bool
		err error
	)
	switch strings.ToLower(key) {
	case KeyName:
		out, err = sorting.Sort(alg, records, record.ByName, pivots)
		ok = err == nil && sorting.IsSorted(out, record.ByName)
	case KeyQuantity:
		out, err = sorting.Sort(alg, records, record.ByQuantity, pivots)
		ok = err == nil && sorting.IsSorted(out, record.ByQuantity)
	case KeyCategory:
		out, err = sorting.Sort(alg, records, record.ByCategory, pivots)
		ok = err == nil && sorting.IsSorted(out, record.ByCategory)
	case KeyExpiry:
		out, err = sorting.Sort(alg, records, record.ByExpiry, pivots)
		ok = err == nil && sorting.IsSorted(out, record.ByExpiry)
	default:
		return nil, fmt.Errorf("unknown sort key %q: must be one of %v", key, ValidKeys)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("records sorted", "by", key, "algorithm", alg, "count", len(out), "verified", ok)
	return out, nil
}

// recordView is the JSON shape of a record.
type recordView struct {
	Name     string     `json:"name"`
	Quantity int        `json:"quantity"`
	Category string     `json:"category"`
	Expiry   *time.Time `json:"expiry,omitempty"`
}

func viewRecord(r record.Record) recordView {
	v := recordView{
		Name:     r.Name(),
		Quantity: r.Quantity(),
		Category: r.Category(),
	}
	if at, ok := r.Expiry().Get(); ok {
		v.Expiry = &at
	}
	return v
}

func viewRecords(records []record.Record) []recordView {
	out := make([]recordView, len(records))
	for i, r := range records {
		out[i] = viewRecord(r)
	}
	return out
}

// entryView is the JSON shape of a timeline entry.
type entryView struct {
	ID     string     `json:"id"`
	At     time.Time  `json:"at"`
	Record recordView `json:"record"`
}

func viewEntries(entries []timeline.Entry) []entryView {
	out := make([]entryView, len(entries))
	for i, e := range entries {
		out[i] = entryView{ID: e.ID, At: e.At, Record: viewRecord(e.Record)}
	}
	return out
}

func formatRecord(r record.Record) string {
	return fmt.Sprintf("%-18s  qty=%3d  category=%-24s  expiry=%s",
		r.Name(), r.Quantity(), r.Category(), r.Expiry().Format(time.DateOnly, expiryPlaceholder))
}

func writeRecords(w io.Writer, records []record.Record) {
	for _, r := range records {
		fmt.Fprintf(w, "  %s\n", formatRecord(r))
	}
}

func head[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}
