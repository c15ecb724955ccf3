package timeline

import (
	"time"

	"github.com/roach88/insumos/internal/record"
)

// Entry pairs a record with the instant it was registered.
type Entry struct {
	ID     string
	At     time.Time
	Record record.Record
}

// Clock supplies registration timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Option configures a Queue or Stack.
type Option func(*config)

type config struct {
	clock Clock
	ids   IDGenerator
}

// WithClock overrides the timestamp source. A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithIDGenerator overrides the entry ID source. A nil generator is ignored.
func WithIDGenerator(g IDGenerator) Option {
	return func(cfg *config) {
		if g != nil {
			cfg.ids = g
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		clock: SystemClock{},
		ids:   UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) stamp(r record.Record) Entry {
	return Entry{
		ID:     c.ids.Generate(),
		At:     c.clock.Now(),
		Record: r,
	}
}
