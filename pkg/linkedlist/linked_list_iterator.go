package linkedlist

import (
	"iter"

	"github.com/pkg/errors"
)

// region Cursor

// Cursor is a forward position in a LinkedList. The zero position past the
// last node is the end sentinel returned by End. A cursor does not own
// anything and goes stale once the list is structurally modified.
type Cursor[T comparable] struct {
	curr *node[T]
	list *LinkedList[T]
	gen  uint64
}

func (l *LinkedList[T]) Begin() Cursor[T] {
	return Cursor[T]{curr: l.head, list: l, gen: l.gen}
}

// End returns the sentinel one past the tail, not the tail itself.
func (l *LinkedList[T]) End() Cursor[T] {
	return Cursor[T]{list: l, gen: l.gen}
}

// Value panics with ErrIteratorOutOfRange at the end sentinel and with
// ErrIteratorInvalidated if the list changed since the cursor was taken.
func (c *Cursor[T]) Value() T {
	c.check()
	if c.curr == nil {
		panic(ErrIteratorOutOfRange)
	}
	return c.curr.value
}

// Next moves the cursor one node forward. At the end sentinel it stays put.
func (c *Cursor[T]) Next() {
	c.check()
	if c.curr != nil {
		c.curr = c.curr.next
	}
}

// Equal reports whether both cursors sit on the same node.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.curr == other.curr
}

func (c *Cursor[T]) check() {
	if c.list != nil && c.gen != c.list.gen {
		panic(errors.Wrapf(ErrIteratorInvalidated, "cursor generation %d, list generation %d", c.gen, c.list.gen))
	}
}

// endregion

// region Iterator
// WARN: NOT CONCURRENT SAFE!!
type Iterator[T comparable] struct {
	cursor Cursor[T]
}

func NewIterator[T comparable](list *LinkedList[T]) *Iterator[T] {
	return &Iterator[T]{cursor: list.Begin()}
}

func (l *LinkedList[T]) Iterator() *Iterator[T] {
	return NewIterator(l)
}

// Next returns the next value, or false once the list is exhausted. Call
// Iterator again to restart from the head.
func (it *Iterator[T]) Next() (T, bool) {
	it.cursor.check()
	if it.cursor.curr == nil {
		var zero T
		return zero, false
	}

	v := it.cursor.Value()
	it.cursor.Next()
	return v, true
}

// All yields every value from head to tail. Modifying the list while
// ranging over it panics with ErrIteratorInvalidated.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c, end := l.Begin(), l.End(); !c.Equal(end); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// endregion
