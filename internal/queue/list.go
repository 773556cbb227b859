package queue

type node[T any] struct {
	value T
	next  *node[T]
}

// List is an unbounded FIFO of values.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
}

// NewList creates an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// PushBack appends value to the back of the list.
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value}
	if l.len == 0 {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.len++
}

// PopFront removes and returns the front value. It reports false when the
// list is empty.
func (l *List[T]) PopFront() (zero T, _ bool) {
	if l.len == 0 {
		return zero, false
	}

	current := l.head
	l.head = current.next
	if l.head == nil {
		l.tail = nil
	}
	l.len--

	current.next = nil

	return current.value, true
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.len
}
