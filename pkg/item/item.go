package item

import (
	"cmp"
	"fmt"

	"go.uber.org/atomic"
)

// Item is an element ordered by Key only. Seq records insertion order so
// that tests can tell equal-keyed items apart after sorting.
type Item struct {
	Key int
	Seq int
}

func (it Item) String() string {
	return fmt.Sprintf("%d#%d", it.Key, it.Seq)
}

// FromKeys builds items whose Seq is their position in keys.
func FromKeys(keys ...int) []Item {
	items := make([]Item, len(keys))
	for i, k := range keys {
		items[i] = Item{Key: k, Seq: i}
	}
	return items
}

func Compare(a, b Item) int {
	return cmp.Compare(a.Key, b.Key)
}

// Counter wraps a comparison function and counts how often it is called.
type Counter struct {
	calls *atomic.Int64
}

func NewCounter() *Counter {
	return &Counter{calls: atomic.NewInt64(0)}
}

func (c *Counter) Compare(a, b Item) int {
	c.calls.Inc()
	return Compare(a, b)
}

// Ints returns an int comparison that shares this counter.
func (c *Counter) Ints() func(a, b int) int {
	return func(a, b int) int {
		c.calls.Inc()
		return cmp.Compare(a, b)
	}
}

func (c *Counter) Calls() int64 {
	return c.calls.Load()
}

func (c *Counter) Reset() {
	c.calls.Store(0)
}
