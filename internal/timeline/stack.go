package timeline

import (
	"iter"

	"github.com/roach88/insumos/internal/record"
)

// Stack is a LIFO of timestamped entries.
type Stack struct {
	cfg     config
	entries []Entry
}

// NewStack creates an empty stack.
func NewStack(opts ...Option) *Stack {
	return &Stack{
		cfg:     newConfig(opts),
		entries: make([]Entry, 0, 16),
	}
}

// Push stamps r and places it on top. It returns the new entry.
func (s *Stack) Push(r record.Record) Entry {
	e := s.cfg.stamp(r)
	s.entries = append(s.entries, e)
	return e
}

// Pop removes and returns the most recently pushed entry.
// Returns (Entry{}, false) if the stack is empty.
func (s *Stack) Pop() (Entry, bool) {
	n := len(s.entries)
	if n == 0 {
		return Entry{}, false
	}

	e := s.entries[n-1]
	s.entries[n-1] = Entry{}
	s.entries = s.entries[:n-1]
	return e, true
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of entries held.
func (s *Stack) Len() int {
	return len(s.entries)
}

// All yields entries in storage order, bottom to top, without removing them.
func (s *Stack) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range s.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Entries returns a snapshot copy of the entries, bottom first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
