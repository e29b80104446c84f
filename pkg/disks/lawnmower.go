package disks

// SortLawnmower sorts a copy of before using the lawnmower algorithm and
// returns the sorted row with the number of swaps performed.
//
// Each iteration scans every adjacent pair left to right and then right to
// left, swapping a dark disk directly left of a light one. At most ceil(k/2)
// iterations run, and the loop stops early after an iteration that made no
// swap, so a row that is already sorted costs one iteration and zero swaps.
func SortLawnmower(before Row) Result {
	return sortLawnmower(before, nil)
}

func sortLawnmower(before Row, observe observer) Result {
	after := before.Clone()
	k := after.LightCount()
	n := after.Len()

	swaps := 0
	for iter := 0; iter < (k+1)/2; iter++ {
		moved := 0
		for j := 0; j < n-1; j++ {
			if after.Get(j) == Dark && after.Get(j+1) == Light {
				after.Swap(j)
				moved++
				observe.step(2*iter, Forward, j, after)
			}
		}
		for j := n - 2; j >= 0; j-- {
			if after.Get(j+1) == Light && after.Get(j) == Dark {
				after.Swap(j)
				moved++
				observe.step(2*iter+1, Backward, j, after)
			}
		}
		swaps += moved
		if moved == 0 {
			break
		}
	}
	return newResult(after, swaps)
}
