package disks

// SortAlternate sorts a copy of before using the alternate algorithm and
// returns the sorted row with the number of swaps performed.
//
// With k = before.LightCount(), the algorithm runs k+1 passes. Even passes
// compare the pairs (0,1), (2,3), ..., (2k-2,2k-1); odd passes compare
// (1,2), (3,4), ..., (2k-3,2k-2). A pair is swapped when it holds a dark disk
// directly left of a light one. The empty row is returned unchanged.
func SortAlternate(before Row) Result {
	return sortAlternate(before, nil)
}

func sortAlternate(before Row, observe observer) Result {
	after := before.Clone()
	k := after.LightCount()
	if k == 0 {
		return newResult(after, 0)
	}

	n := after.Len()
	swaps := 0
	for pass := 0; pass <= k; pass++ {
		start, end := 0, n-1
		if pass%2 == 1 {
			start, end = 1, n-2
		}
		for j := start; j < end; j += 2 {
			if after.Get(j) == Dark && after.Get(j+1) == Light {
				after.Swap(j)
				swaps++
				observe.step(pass, Forward, j, after)
			}
		}
	}
	return newResult(after, swaps)
}
