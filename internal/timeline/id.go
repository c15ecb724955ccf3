package timeline

import "github.com/google/uuid"

// IDGenerator produces entry identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 entry IDs.
//
// UUIDv7 embeds a millisecond timestamp in its high bits, so IDs from one
// process sort in registration order.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7.
//
// Panics if the random source fails, which uuid treats as unrecoverable.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
