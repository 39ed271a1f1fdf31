package sorting_test

import (
	"fmt"

	"github.com/snwfog/collections.go/pkg/arraylist"
	"github.com/snwfog/collections.go/pkg/linkedlist"
	"github.com/snwfog/collections.go/pkg/sorting"
)

func ExampleQuickSort() {
	s := []int{3, 1, 2}
	sorting.QuickSort(s)
	fmt.Println(s)
	// Output: [1 2 3]
}

func ExampleInsertionSort() {
	s := []byte{'b', 'a'}
	sorting.InsertionSort(s)
	fmt.Println(string(s))
	// Output: ab
}

func ExampleMergeSort_linkedList() {
	l := linkedlist.New[int]()
	for _, v := range []int{5, 3, 8, 1} {
		l.PushBack(v)
	}

	values := l.Values()
	sorting.MergeSort(values)
	fmt.Println(values, l)
	// Output: [1 3 5 8] 5 3 8 1
}

func ExampleBubbleSort_arrayList() {
	l, _ := arraylist.New[string](arraylist.WithCapacity(4))
	for _, v := range []string{"pear", "fig", "apple"} {
		_ = l.InsertUnique(v)
	}

	values := l.Values()
	sorting.BubbleSort(values)
	fmt.Println(values)
	// Output: [apple fig pear]
}
