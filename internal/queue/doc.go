// Package queue provides the FIFO list backing a sequence's pending buffer.
// Values are appended at the back and removed from the front; insertion order
// is preserved and capacity is unbounded.
//
// The list carries no locking. The adapter it backs is documented as
// single-owner and single-threaded, so callers sharing a list across
// goroutines must provide their own synchronization.
package queue
