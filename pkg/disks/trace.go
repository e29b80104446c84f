package disks

// Direction is the scan direction of a pass.
type Direction int

const (
	Forward  Direction = iota // left to right
	Backward                  // right to left
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Step records a single swap made during a traced sort.
type Step struct {
	// Pass is the 0-based pass number in execution order. For the lawnmower
	// algorithm iteration i runs passes 2i (forward) and 2i+1 (backward).
	Pass int

	Direction Direction

	// Index is the left position of the swapped pair.
	Index int

	// After is a snapshot of the row right after the swap.
	After Row
}

// observer is called after every swap. A nil observer ignores steps.
type observer func(pass int, dir Direction, index int, row Row)

func (o observer) step(pass int, dir Direction, index int, row Row) {
	if o != nil {
		o(pass, dir, index, row)
	}
}

// TraceAlternate runs [SortAlternate] and records every swap it makes.
func TraceAlternate(before Row) (Result, []Step) {
	var steps []Step
	res := sortAlternate(before, recorder(&steps))
	return res, steps
}

// TraceLawnmower runs [SortLawnmower] and records every swap it makes.
func TraceLawnmower(before Row) (Result, []Step) {
	var steps []Step
	res := sortLawnmower(before, recorder(&steps))
	return res, steps
}

func recorder(steps *[]Step) observer {
	return func(pass int, dir Direction, index int, row Row) {
		*steps = append(*steps, Step{Pass: pass, Direction: dir, Index: index, After: row.Clone()})
	}
}
