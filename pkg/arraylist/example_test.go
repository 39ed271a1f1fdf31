package arraylist_test

import (
	"fmt"

	"github.com/snwfog/collections.go/pkg/arraylist"
)

func Example() {
	l, err := arraylist.New[int](arraylist.WithCapacity(3))
	if err != nil {
		panic(err)
	}

	for _, v := range []int{5, 9, 1, 2} {
		if err := l.PushBack(v); err != nil {
			fmt.Println(err)
		}
	}
	fmt.Println(l.Len(), l.Values())
	// Output:
	// push back 3 (len 3, cap 3): arraylist: list is full
	// 3 [5 9 1]
}

func ExampleNew_invalidCapacity() {
	_, err := arraylist.New[int](arraylist.WithCapacity(0))
	fmt.Println(err)
	// Output: capacity 0: arraylist: capacity must be greater than 0
}
