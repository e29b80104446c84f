package disks

import (
	"strings"

	"github.com/matzehuels/disksort/pkg/errors"
)

// Algorithm names accepted by [Lookup].
const (
	AlgorithmAlternate = "alternate"
	AlgorithmLawnmower = "lawnmower"
)

// Algorithm pairs a sorting algorithm with its traced variant.
type Algorithm struct {
	Name  string
	Sort  func(Row) Result
	Trace func(Row) (Result, []Step)
}

var algorithms = []Algorithm{
	{Name: AlgorithmAlternate, Sort: SortAlternate, Trace: TraceAlternate},
	{Name: AlgorithmLawnmower, Sort: SortLawnmower, Trace: TraceLawnmower},
}

// Algorithms returns every registered algorithm in a stable order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// Names returns the names of every registered algorithm.
func Names() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.Name
	}
	return names
}

// Lookup returns the algorithm with the given name, ignoring case.
func Lookup(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range algorithms {
		if a.Name == key {
			return a, nil
		}
	}
	return Algorithm{}, errors.New(errors.ErrCodeInvalidAlgorithm,
		"unknown algorithm %q (valid: %s)", name, strings.Join(Names(), ", "))
}
