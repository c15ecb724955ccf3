package record

import (
	"fmt"
	"time"
)

// Record is one unit of consumable material tied to a procedure.
type Record struct {
	name     string
	quantity int
	category string
	expiry   Expiry
}

// New builds a Record after checking the field invariants.
func New(name string, quantity int, category string, expiry Expiry) (Record, error) {
	if name == "" {
		return Record{}, &ValidationError{Field: "name", Err: ErrEmptyName}
	}
	if quantity < 0 {
		return Record{}, &ValidationError{Field: "quantity", Err: ErrNegativeQuantity}
	}
	if category == "" {
		return Record{}, &ValidationError{Field: "category", Err: ErrEmptyCategory}
	}
	return Record{
		name:     name,
		quantity: quantity,
		category: category,
		expiry:   expiry,
	}, nil
}

// MustNew is like New but panics on invalid input. Intended for fixtures.
func MustNew(name string, quantity int, category string, expiry Expiry) Record {
	r, err := New(name, quantity, category, expiry)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the material identifier.
func (r Record) Name() string { return r.name }

// Quantity returns the consumed count.
func (r Record) Quantity() int { return r.quantity }

// Category returns the procedure the material belongs to.
func (r Record) Category() string { return r.category }

// Expiry returns the optional expiry.
func (r Record) Expiry() Expiry { return r.expiry }

// IsZero reports whether r is the zero Record (never produced by New).
func (r Record) IsZero() bool { return r.name == "" }

// String renders the record for logs and debugging.
func (r Record) String() string {
	return fmt.Sprintf("%s qty=%d category=%s expiry=%s",
		r.name, r.quantity, r.category, r.expiry.Format(time.DateOnly, "-"))
}

// Expiry is an optional point in time. The zero value means no expiry is tracked.
type Expiry struct {
	at  time.Time
	set bool
}

// NoExpiry returns the absent Expiry.
func NoExpiry() Expiry { return Expiry{} }

// ExpiresAt returns a present Expiry at t.
func ExpiresAt(t time.Time) Expiry { return Expiry{at: t, set: true} }

// Get returns the expiry time and whether one is present.
func (e Expiry) Get() (time.Time, bool) { return e.at, e.set }

// IsSet reports whether an expiry is present.
func (e Expiry) IsSet() bool { return e.set }

// Format renders the expiry with layout, or placeholder when absent.
func (e Expiry) Format(layout, placeholder string) string {
	if !e.set {
		return placeholder
	}
	return e.at.Format(layout)
}

// Equal reports whether both expiries are absent, or both present at the same instant.
func (e Expiry) Equal(other Expiry) bool {
	if e.set != other.set {
		return false
	}
	return !e.set || e.at.Equal(other.at)
}
