package disks_test

import (
	"fmt"

	"github.com/matzehuels/disksort/pkg/disks"
)

func ExampleSortAlternate() {
	row := disks.New(3)
	res := disks.SortAlternate(row)
	fmt.Println("before:", row)
	fmt.Println("after: ", res.After())
	fmt.Println("swaps: ", res.SwapCount())
	// Output:
	// before: L D L D L D
	// after:  L L L D D D
	// swaps:  3
}

func ExampleSortLawnmower() {
	res := disks.SortLawnmower(disks.New(4))
	fmt.Println(res.After(), res.SwapCount())
	// Output:
	// L L L L D D D D 6
}

func ExampleTraceLawnmower() {
	_, steps := disks.TraceLawnmower(disks.New(2))
	for _, s := range steps {
		fmt.Printf("pass %d %s swap %d: %s\n", s.Pass, s.Direction, s.Index, s.After)
	}
	// Output:
	// pass 0 forward swap 1: L L D D
}

func ExampleParse() {
	row, err := disks.Parse("LDDL")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(row, row.Inversions())
	// Output:
	// L D D L 2
}
