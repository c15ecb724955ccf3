// Package timeline records when consumable records were observed or acted on.
//
// Two containers share the same Entry type:
//   - Queue: FIFO, consumption events drained in the order they were registered
//   - Stack: LIFO, lookups replayed most-recent first
//
// Registration stamps each entry with Clock.Now() and an ID from an
// IDGenerator. Both are injectable so tests can produce byte-identical
// timelines.
//
// Neither container is safe for concurrent use. Callers that share one
// across goroutines must synchronise externally.
package timeline
