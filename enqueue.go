package enqueue

import (
	"iter"

	"github.com/hseeberger/enqueue/internal/queue"
	"github.com/hseeberger/enqueue/internal/telemetry"
)

// Sequence produces the values of a wrapped producer followed by whatever has
// been appended via Enqueue. Values may be appended at any time, even after
// Next has reported exhaustion, so a Sequence can produce again after
// appearing to end.
//
// A Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	next    func() (T, bool)
	pending *queue.List[T]
	done    bool
}

// Option configures a Sequence during construction.
type Option[T any] func(*Sequence[T])

// WithPending seeds the pending buffer with the given values, in order, as if
// each had been enqueued before the first call to Next.
func WithPending[T any](values ...T) Option[T] {
	return func(s *Sequence[T]) {
		for _, v := range values {
			s.pending.PushBack(v)
		}
	}
}

// New wraps a producer given in pull form: next returns the next value and
// true, or the zero value and false once the producer is exhausted. After the
// first false the producer is never called again.
func New[T any](next func() (T, bool), options ...Option[T]) *Sequence[T] {
	s := &Sequence[T]{
		next:    next,
		pending: queue.NewList[T](),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// FromSeq wraps a range-over-func sequence. Values are pulled lazily, one per
// call to Next; the pull's stop function is released when the sequence first
// signals exhaustion.
func FromSeq[T any](src iter.Seq[T], options ...Option[T]) *Sequence[T] {
	next, stop := iter.Pull(src)
	return New(func() (T, bool) {
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok
	}, options...)
}

// FromSlice wraps a slice, producing its elements in order.
func FromSlice[T any](values []T, options ...Option[T]) *Sequence[T] {
	index := 0
	return New(func() (zero T, _ bool) {
		if index >= len(values) {
			return zero, false
		}
		v := values[index]
		index++
		return v, true
	}, options...)
}

// Enqueue appends value to the logical end of the sequence. It may be called
// at any point relative to consumption, including after Next has reported
// exhaustion.
func (s *Sequence[T]) Enqueue(value T) {
	s.pending.PushBack(value)
	telemetry.RecordEnqueue()
}

// Next produces the next value. The wrapped producer is drained first; once
// it is exhausted, values are taken from the front of the pending buffer.
// Next reports false only when both are empty, and reports true again after a
// subsequent Enqueue.
func (s *Sequence[T]) Next() (zero T, _ bool) {
	if !s.done {
		if v, ok := s.next(); ok {
			telemetry.RecordSourceYield()
			return v, true
		}
		s.done = true
	}

	v, ok := s.pending.PopFront()
	if !ok {
		return zero, false
	}
	telemetry.RecordPendingYield()
	return v, true
}

// Pending returns the number of values currently queued behind the wrapped
// producer.
func (s *Sequence[T]) Pending() int {
	return s.pending.Len()
}

// All returns a range-over-func view of the sequence. The range ends at the
// first observed exhaustion; values enqueued while ranging are still yielded
// before it ends. Ranging again, or calling Next directly, resumes production
// if values were enqueued in between.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the sequence into a slice until exhaustion is observed. It
// returns nil when the sequence is exhausted on entry.
func (s *Sequence[T]) Collect() []T {
	var values []T
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		values = append(values, v)
	}
	return values
}
