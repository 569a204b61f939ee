package chain_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/cronies/chain"
	"github.com/hasbyte1/cronies/job"
)

func ExampleWrap() {
	w := chain.Wrap([]any{3, 1, 3, 2, 1.005}).
		Unique().
		RoundTo(2)

	v, err := w.Result()
	fmt.Println(v, err, w.Depth())
	// Output: [3 1 2 1] <nil> 2
}

func ExampleWrapper_Map() {
	double := func(v any, _ job.Key, _ any) any { return v.(int) * 2 }

	w := chain.Wrap([]int{10, 20, 30, 40}).Map(double, "1,3")
	fmt.Println(w.Data())
	// Output: [40 80]
}

func ExampleWrapper_Merge() {
	w := chain.Wrap(map[string]any{"a": 1, "b": 2}).
		Merge(map[string]any{"b": 3, "c": 4})
	fmt.Println(w.Data())
	// Output: {"a":1,"b":2,"c":4}
}

func ExampleWrapper_Backtrack() {
	w := chain.Wrap([]int{1, 2, 3}).Flatten().Max()
	fmt.Println(w.Data())

	w.Backtrack()
	fmt.Println(w.Data())
	// Output:
	// 3
	// [1 2 3]
}

func ExampleWrapper_Err() {
	w := chain.Wrap("not a list").Flatten().Unique()
	fmt.Println(errors.Is(w.Err(), chain.ErrTypeMismatch))
	fmt.Println(w.Err())
	// Output:
	// true
	// flatten: cronies: type mismatch: cannot flatten string
}

func ExampleWrapper_RoundToFixed() {
	fmt.Println(chain.Wrap(125).RoundToFixed(2).Data())
	// Output: 125.00
}
