package sorting

import (
	"cmp"
)

// InsertionSort sorts s in place. Stable.
func InsertionSort[S ~[]E, E cmp.Ordered](s S) {
	InsertionSortFunc(s, cmp.Compare[E])
}

// InsertionSortFunc shifts elements right while they compare strictly
// greater than the key, so equal elements keep their order.
func InsertionSortFunc[S ~[]E, E any](s S, compare func(a, b E) int) {
	for i := 1; i < len(s); i++ {
		tmp := s[i]

		j := i
		for ; j > 0 && compare(tmp, s[j-1]) < 0; j-- {
			s[j] = s[j-1]
		}

		s[j] = tmp
	}
}

// SelectionSort sorts s in place. Not stable.
func SelectionSort[S ~[]E, E cmp.Ordered](s S) {
	SelectionSortFunc(s, cmp.Compare[E])
}

func SelectionSortFunc[S ~[]E, E any](s S, compare func(a, b E) int) {
	for i := 0; i < len(s)-1; i++ {
		least := i
		for j := i + 1; j < len(s); j++ {
			if compare(s[j], s[least]) < 0 {
				least = j
			}
		}

		s[least], s[i] = s[i], s[least]
	}
}

// BubbleSort sorts s in place by bubbling the smallest remaining element
// to the front on every pass. Every pass runs to completion, there is no
// early exit on an already sorted input.
func BubbleSort[S ~[]E, E cmp.Ordered](s S) {
	BubbleSortFunc(s, cmp.Compare[E])
}

func BubbleSortFunc[S ~[]E, E any](s S, compare func(a, b E) int) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		for j := n - 1; j > i; j-- {
			if compare(s[j], s[j-1]) < 0 {
				s[j], s[j-1] = s[j-1], s[j]
			}
		}
	}
}

// MergeSort sorts s in place. Stable; on ties the left half wins.
func MergeSort[S ~[]E, E cmp.Ordered](s S) {
	MergeSortFunc(s, cmp.Compare[E])
}

func MergeSortFunc[S ~[]E, E any](s S, compare func(a, b E) int) {
	mergeSort(s, 0, len(s)-1, compare)
}

func mergeSort[S ~[]E, E any](s S, left, right int, compare func(a, b E) int) {
	if left >= right {
		return
	}

	mid := left + (right-left)/2
	mergeSort(s, left, mid, compare)
	mergeSort(s, mid+1, right, compare)
	merge(s, left, mid, right, compare)
}

// merge combines the sorted runs s[left:mid+1] and s[mid+1:right+1].
func merge[S ~[]E, E any](s S, left, mid, right int, compare func(a, b E) int) {
	l := make([]E, mid-left+1)
	r := make([]E, right-mid)
	copy(l, s[left:mid+1])
	copy(r, s[mid+1:right+1])

	i, j, k := 0, 0, left
	for i < len(l) && j < len(r) {
		if compare(l[i], r[j]) <= 0 {
			s[k] = l[i]
			i++
		} else {
			s[k] = r[j]
			j++
		}
		k++
	}

	k += copy(s[k:], l[i:])
	copy(s[k:], r[j:])
}

// QuickSort sorts s in place, pivoting on the first element of each
// range. Not stable; sorted input is the O(n²) worst case.
func QuickSort[S ~[]E, E cmp.Ordered](s S) {
	QuickSortFunc(s, cmp.Compare[E])
}

func QuickSortFunc[S ~[]E, E any](s S, compare func(a, b E) int) {
	quickSort(s, 0, len(s)-1, compare)
}

func quickSort[S ~[]E, E any](s S, low, high int, compare func(a, b E) int) {
	if low < high {
		p := partition(s, low, high, compare)
		quickSort(s, low, p-1, compare)
		quickSort(s, p+1, high, compare)
	}
}

// partition moves every element <= s[low] in front of the boundary and
// drops the pivot on it. It returns the pivot's final index.
func partition[S ~[]E, E any](s S, low, high int, compare func(a, b E) int) int {
	pivot := s[low]
	i := low

	for j := low + 1; j <= high; j++ {
		if compare(s[j], pivot) <= 0 {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}

	s[i], s[low] = s[low], s[i]
	return i
}
