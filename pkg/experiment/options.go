package experiment

import (
	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
)

// Options configures a run.
type Options struct {
	// Min and Max bound the light counts, inclusive. Min == Max == 0 runs
	// only the empty row.
	Min int
	Max int

	// Algorithms to run, by name. Empty selects every registered algorithm.
	Algorithms []string

	validated bool
	resolved  []disks.Algorithm
}

// ValidateAndSetDefaults fills in defaults and checks every field. It is
// safe to call more than once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateRange(o.Min, o.Max); err != nil {
		return err
	}

	if len(o.Algorithms) == 0 {
		o.Algorithms = disks.Names()
	}
	o.resolved = o.resolved[:0]
	for _, name := range o.Algorithms {
		a, err := disks.Lookup(name)
		if err != nil {
			return err
		}
		o.resolved = append(o.resolved, a)
	}

	o.validated = true
	return nil
}

// Cases returns the number of sorts a run with these options performs.
func (o *Options) Cases() int {
	return (o.Max - o.Min + 1) * len(o.Algorithms)
}
