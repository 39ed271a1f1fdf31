package linkedlist

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/snwfog/collections.go/pkg/util"
)

var (
	ErrEmptyList           = errors.New("linkedlist: list is empty")
	ErrNotFound            = errors.New("linkedlist: item not found")
	ErrIteratorOutOfRange  = errors.New("linkedlist: dereferencing end iterator")
	ErrIteratorInvalidated = errors.New("linkedlist: iterator used after list was modified")
)

var discard = slog.New(slog.DiscardHandler)

type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes the list's diagnostics to logger. A nil logger keeps
// the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if !util.IsNil(logger) {
			o.logger = logger
		}
	}
}

// region Node
type node[T comparable] struct {
	value T
	next  *node[T]
}

// endregion

// region LinkedList

// LinkedList is an unsorted singly linked list. It owns every node; tail
// is cached so appends are O(1).
//
// WARN: NOT CONCURRENT SAFE!! Hand other goroutines a Clone instead.
type LinkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int

	// gen counts structural mutations, cursors use it to detect staleness
	gen    uint64
	logger *slog.Logger
}

func New[T comparable](opts ...Option) *LinkedList[T] {
	o := options{logger: discard}
	for _, opt := range opts {
		opt(&o)
	}

	return &LinkedList[T]{logger: o.logger}
}

// log falls back to a discarding logger for a zero-value list.
func (l *LinkedList[T]) log() *slog.Logger {
	if l.logger == nil {
		return discard
	}
	return l.logger
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *LinkedList[T]) Len() int {
	return l.size
}

// Front panics with ErrEmptyList if the list is empty.
func (l *LinkedList[T]) Front() T {
	if l.head == nil {
		panic(errors.Wrap(ErrEmptyList, "front"))
	}
	return l.head.value
}

// Back panics with ErrEmptyList if the list is empty.
func (l *LinkedList[T]) Back() T {
	if l.tail == nil {
		panic(errors.Wrap(ErrEmptyList, "back"))
	}
	return l.tail.value
}

func (l *LinkedList[T]) PushBack(v T) {
	n := &node[T]{value: v}

	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}

	l.size++
	l.gen++
}

func (l *LinkedList[T]) PushFront(v T) {
	n := &node[T]{value: v, next: l.head}

	if l.head == nil {
		l.tail = n
	}
	l.head = n

	l.size++
	l.gen++
}

func (l *LinkedList[T]) Contains(v T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return true
		}
	}

	return false
}

// Delete unlinks the first node holding v. It reports false with
// ErrEmptyList or ErrNotFound and leaves the list untouched when there is
// nothing to delete.
func (l *LinkedList[T]) Delete(v T) (bool, error) {
	if l.IsEmpty() {
		l.log().Debug("cannot delete from empty list")
		return false, ErrEmptyList
	}

	var prev *node[T]
	curr := l.head
	for curr != nil && curr.value != v {
		prev, curr = curr, curr.next
	}

	if curr == nil {
		l.log().Debug("item not found in list", "item", v)
		return false, errors.Wrapf(ErrNotFound, "delete %v", v)
	}

	if prev == nil {
		l.head = curr.next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		prev.next = curr.next
		if curr == l.tail {
			l.tail = prev
		}
	}

	curr.next = nil
	l.size--
	l.gen++

	l.log().Debug("deleted node", "item", v, "len", l.size)
	return true, nil
}

// Clear unlinks every node and resets the list to empty.
func (l *LinkedList[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}

	l.head, l.tail = nil, nil
	l.size = 0
	l.gen++
}

// Clone returns a deep copy of l with the same logger.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	c := &LinkedList[T]{logger: l.logger}
	c.copyFrom(l)
	return c
}

// CopyFrom replaces the contents of l with a copy of other's. Copying a
// list onto itself is a no-op.
func (l *LinkedList[T]) CopyFrom(other *LinkedList[T]) {
	if l == other {
		return
	}

	l.Clear()
	l.copyFrom(other)
}

// copyFrom expects l to be empty.
func (l *LinkedList[T]) copyFrom(other *LinkedList[T]) {
	if other.head == nil {
		return
	}

	src := other.head
	l.head = &node[T]{value: src.value}
	dst := l.head

	for src = src.next; src != nil; src = src.next {
		dst.next = &node[T]{value: src.value}
		dst = dst.next
	}

	l.tail = dst
	l.size = other.size
	l.gen++
}

// Values copies the list into a new slice in iteration order.
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Digest returns an order-sensitive fingerprint of the list's values.
func (l *LinkedList[T]) Digest() uint64 {
	d := util.NewDigest()
	for n := l.head; n != nil; n = n.next {
		d.Add(n.value)
	}
	return d.Sum64()
}

func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	_ = l.Print(&sb)
	return sb.String()
}

// Print writes the values separated by single spaces.
func (l *LinkedList[T]) Print(w io.Writer) error {
	for n := l.head; n != nil; n = n.next {
		sep := " "
		if n == l.head {
			sep = ""
		}
		if _, err := fmt.Fprint(w, sep, n.value); err != nil {
			return errors.Wrap(err, "print")
		}
	}
	return nil
}

// endregion
