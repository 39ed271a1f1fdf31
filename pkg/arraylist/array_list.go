package arraylist

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/snwfog/collections.go/pkg/util"
)

// NotFound is returned by Index when the item is absent.
const NotFound = -1

// DefaultCapacity is used when New is called without WithCapacity.
const DefaultCapacity = 100

var (
	ErrInvalidCapacity = errors.New("arraylist: capacity must be greater than 0")
	ErrFull            = errors.New("arraylist: list is full")
	ErrEmptyList       = errors.New("arraylist: list is empty")
	ErrIndexOutOfRange = errors.New("arraylist: index out of range")
	ErrDuplicate       = errors.New("arraylist: duplicates not allowed")
	ErrNotFound        = errors.New("arraylist: item not found")
)

var discard = slog.New(slog.DiscardHandler)

type Option func(*options)

type options struct {
	capacity int
	logger   *slog.Logger
}

func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
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

// ArrayList is a bounded list backed by one buffer allocated up front.
// Elements always occupy buf[0:length].
//
// WARN: NOT CONCURRENT SAFE!! Hand other goroutines a Clone instead.
type ArrayList[T comparable] struct {
	buf    []T
	length int

	logger *slog.Logger
}

// New allocates a list of DefaultCapacity unless WithCapacity says
// otherwise. A capacity below 1 is rejected with ErrInvalidCapacity.
func New[T comparable](opts ...Option) (*ArrayList[T], error) {
	o := options{
		capacity: DefaultCapacity,
		logger:   discard,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", o.capacity)
	}

	return &ArrayList[T]{
		buf:    make([]T, o.capacity),
		logger: o.logger,
	}, nil
}

// log falls back to a discarding logger for a zero-value list.
func (l *ArrayList[T]) log() *slog.Logger {
	if l.logger == nil {
		return discard
	}
	return l.logger
}

func (l *ArrayList[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *ArrayList[T]) IsFull() bool {
	return l.length == len(l.buf)
}

func (l *ArrayList[T]) Len() int {
	return l.length
}

func (l *ArrayList[T]) Cap() int {
	return len(l.buf)
}

// InsertAt shifts buf[index:length] one slot right and stores v at index.
// index may equal Len, which appends.
func (l *ArrayList[T]) InsertAt(index int, v T) error {
	if l.IsFull() {
		return l.fail(ErrFull, "insert at", index)
	}
	if index < 0 || index > l.length {
		return l.fail(ErrIndexOutOfRange, "insert at", index)
	}

	copy(l.buf[index+1:l.length+1], l.buf[index:l.length])
	l.buf[index] = v
	l.length++
	return nil
}

func (l *ArrayList[T]) PushBack(v T) error {
	if l.IsFull() {
		return l.fail(ErrFull, "push back", l.length)
	}

	l.buf[l.length] = v
	l.length++
	return nil
}

// InsertUnique appends v unless an equal element is already present.
func (l *ArrayList[T]) InsertUnique(v T) error {
	if l.IsFull() {
		return l.fail(ErrFull, "insert unique", l.length)
	}
	if i := l.Index(v); i != NotFound {
		return l.fail(ErrDuplicate, "insert unique", i)
	}

	l.buf[l.length] = v
	l.length++
	return nil
}

// RemoveAt shifts buf(index:length) one slot left. The vacated slot is
// reset to the zero value.
func (l *ArrayList[T]) RemoveAt(index int) error {
	if l.IsEmpty() {
		return l.fail(ErrEmptyList, "remove at", index)
	}
	if index < 0 || index >= l.length {
		return l.fail(ErrIndexOutOfRange, "remove at", index)
	}

	copy(l.buf[index:l.length-1], l.buf[index+1:l.length])
	l.length--

	var zero T
	l.buf[l.length] = zero
	return nil
}

// Remove deletes the first element equal to v.
func (l *ArrayList[T]) Remove(v T) error {
	if l.IsEmpty() {
		return l.fail(ErrEmptyList, "remove", NotFound)
	}

	i := l.Index(v)
	if i == NotFound {
		l.log().Debug("no such item in the list", "item", v)
		return errors.Wrapf(ErrNotFound, "remove %v", v)
	}

	return l.RemoveAt(i)
}

// At returns the element stored at index.
//
// NOTE: index == Len is accepted as long as it lies inside the buffer, so
// At can read the slot one past the last element. That slot holds the zero
// value, since RemoveAt and Clear reset vacated slots. Callers that want
// strict bounds should check index < Len themselves.
func (l *ArrayList[T]) At(index int) (T, error) {
	var zero T
	if l.IsEmpty() {
		return zero, l.fail(ErrEmptyList, "at", index)
	}
	if index < 0 || index > l.length || index >= len(l.buf) {
		return zero, l.fail(ErrIndexOutOfRange, "at", index)
	}

	return l.buf[index], nil
}

// Set overwrites the element at index.
func (l *ArrayList[T]) Set(index int, v T) error {
	if l.IsEmpty() {
		return l.fail(ErrEmptyList, "set", index)
	}
	if index < 0 || index >= l.length {
		return l.fail(ErrIndexOutOfRange, "set", index)
	}

	l.buf[index] = v
	return nil
}

// Clear drops every element but keeps the buffer.
func (l *ArrayList[T]) Clear() {
	clear(l.buf[:l.length])
	l.length = 0
}

// Index returns the position of the first element equal to v, or NotFound.
func (l *ArrayList[T]) Index(v T) int {
	for i := 0; i < l.length; i++ {
		if l.buf[i] == v {
			return i
		}
	}

	return NotFound
}

func (l *ArrayList[T]) Contains(v T) bool {
	return l.Index(v) != NotFound
}

// Clone returns a deep copy with the same capacity and logger.
func (l *ArrayList[T]) Clone() *ArrayList[T] {
	c := &ArrayList[T]{logger: l.logger}
	c.copyFrom(l)
	return c
}

// CopyFrom replaces l's buffer with a copy of other's live elements. The
// capacity of l becomes other's capacity. A zero-value other has no buffer
// to copy and leaves l unchanged.
func (l *ArrayList[T]) CopyFrom(other *ArrayList[T]) {
	if l == other || len(other.buf) == 0 {
		return
	}

	l.copyFrom(other)
}

func (l *ArrayList[T]) copyFrom(other *ArrayList[T]) {
	buf := make([]T, len(other.buf))
	copy(buf, other.buf[:other.length])

	l.buf = buf
	l.length = other.length
}

// Values copies the live elements into a new slice.
func (l *ArrayList[T]) Values() []T {
	values := make([]T, l.length)
	copy(values, l.buf[:l.length])
	return values
}

// Digest returns an order-sensitive fingerprint of the live elements.
func (l *ArrayList[T]) Digest() uint64 {
	d := util.NewDigest()
	for _, v := range l.buf[:l.length] {
		d.Add(v)
	}
	return d.Sum64()
}

func (l *ArrayList[T]) String() string {
	var sb strings.Builder
	_ = l.Print(&sb)
	return sb.String()
}

// Print writes the live elements separated by single spaces.
func (l *ArrayList[T]) Print(w io.Writer) error {
	for i, v := range l.buf[:l.length] {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprint(w, sep, v); err != nil {
			return errors.Wrap(err, "print")
		}
	}
	return nil
}

// fail logs a rejected operation and returns err annotated with it.
func (l *ArrayList[T]) fail(err error, op string, index int) error {
	l.log().Debug(err.Error(), "op", op, "index", index, "len", l.length, "cap", len(l.buf))
	return errors.Wrapf(err, "%s %d (len %d, cap %d)", op, index, l.length, len(l.buf))
}
