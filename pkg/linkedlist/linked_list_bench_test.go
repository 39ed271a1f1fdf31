package linkedlist

import (
	"testing"
)

var Contains bool

func BenchmarkPushBack(b *testing.B) {
	ll := New[int]()
	for i := 0; i < b.N; i++ {
		ll.PushBack(i)
	}
}

func BenchmarkPushFront(b *testing.B) {
	ll := New[int]()
	for i := 0; i < b.N; i++ {
		ll.PushFront(i)
	}
}

func BenchmarkContains_10(b *testing.B)   { contains(b, 10) }
func BenchmarkContains_100(b *testing.B)  { contains(b, 100) }
func BenchmarkContains_1000(b *testing.B) { contains(b, 1000) }

func contains(b *testing.B, n int) {
	ll := New[int]()
	for i := 0; i < n; i++ {
		ll.PushBack(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Contains = ll.Contains(i % n)
	}
}

func BenchmarkClone_1000(b *testing.B) {
	ll := New[int]()
	for i := 0; i < 1000; i++ {
		ll.PushBack(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ll.Clone()
	}
}

func BenchmarkIterator_1000(b *testing.B) {
	ll := New[int]()
	for i := 0; i < 1000; i++ {
		ll.PushBack(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := ll.Iterator()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}
