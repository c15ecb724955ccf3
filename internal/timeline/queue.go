package timeline

import (
	"iter"

	"github.com/roach88/insumos/internal/record"
)

// Queue is a FIFO of timestamped entries.
type Queue struct {
	cfg     config
	entries []Entry
}

// NewQueue creates an empty queue.
func NewQueue(opts ...Option) *Queue {
	return &Queue{
		cfg:     newConfig(opts),
		entries: make([]Entry, 0, 16),
	}
}

// Register stamps r and appends it at the tail. It returns the new entry.
func (q *Queue) Register(r record.Record) Entry {
	e := q.cfg.stamp(r)
	q.entries = append(q.entries, e)
	return e
}

// Next removes and returns the head entry.
// Returns (Entry{}, false) if the queue is empty.
func (q *Queue) Next() (Entry, bool) {
	if len(q.entries) == 0 {
		return Entry{}, false
	}

	e := q.entries[0]

	// Clear the slot so the backing array stops referencing the record.
	q.entries[0] = Entry{}

	if len(q.entries) == 1 {
		q.entries = q.entries[:0]
	} else {
		q.entries = q.entries[1:]
	}

	return e, true
}

// Peek returns the head entry without removing it.
func (q *Queue) Peek() (Entry, bool) {
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	return q.entries[0], true
}

// Len returns the number of entries held.
func (q *Queue) Len() int {
	return len(q.entries)
}

// All yields entries head to tail without removing them. Each call starts
// from the current head.
func (q *Queue) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range q.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Entries returns a snapshot copy of the entries, head first.
func (q *Queue) Entries() []Entry {
	out := make([]Entry, len(q.entries))
	copy(out, q.entries)
	return out
}
