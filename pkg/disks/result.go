package disks

// Result is the outcome of a sort: the final row and the number of adjacent
// swaps performed. A Result owns its row; [Result.After] returns a copy.
type Result struct {
	after     Row
	swapCount int
}

func newResult(after Row, swapCount int) Result {
	return Result{after: after, swapCount: swapCount}
}

// After returns a copy of the final row.
func (r Result) After() Row { return r.after.Clone() }

// SwapCount returns the number of swaps performed.
func (r Result) SwapCount() int { return r.swapCount }

// IsSorted reports whether the final row is sorted.
func (r Result) IsSorted() bool { return r.after.IsSorted() }
