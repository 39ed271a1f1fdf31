// Package collections holds two generic containers and a set of classic
// in-place sorts.
//
//   - pkg/linkedlist: singly linked list with O(1) push at both ends, a
//     begin/end cursor, a Next() (T, bool) iterator and deep copies.
//   - pkg/arraylist: fixed-capacity list over one buffer with positional
//     and value based insert, remove and replace.
//   - pkg/sorting: insertion, selection, bubble, merge and quick sort over
//     any slice, with ...Func variants taking a comparison.
//
// Recoverable failures (index out of range, full, duplicate, not found)
// come back as errors and never mutate the container. Precondition
// violations (Front on an empty list, dereferencing End, using a stale
// cursor) panic.
//
// Nothing here is safe for concurrent mutation. Give each goroutine its own
// Clone.
package collections
