package experiment

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/observability"
)

// Runner executes experiments. It holds no per-run state, so one Runner
// may be shared by several goroutines.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Case is the outcome of one algorithm on one row size.
type Case struct {
	Algorithm  string
	LightCount int
	Swaps      int

	// Expected is the minimum swap count for the input row.
	Expected int

	// Sorted and Conserved report the postconditions: the final row is
	// sorted, and its light and dark counts match the input.
	Sorted    bool
	Conserved bool

	Duration time.Duration
}

// OK reports whether every check passed.
func (c Case) OK() bool {
	return c.Sorted && c.Conserved && c.Swaps == c.Expected
}

// Report collects the cases of one run.
type Report struct {
	RunID    string
	Cases    []Case
	Duration time.Duration
}

// Failures returns the cases that failed a check.
func (r *Report) Failures() []Case {
	var out []Case
	for _, c := range r.Cases {
		if !c.OK() {
			out = append(out, c)
		}
	}
	return out
}

// TotalSwaps sums the swaps of every case for the named algorithm.
func (r *Report) TotalSwaps(algorithm string) int {
	total := 0
	for _, c := range r.Cases {
		if c.Algorithm == algorithm {
			total += c.Swaps
		}
	}
	return total
}

// Run sorts the initialized row for every light count and algorithm in opts.
// The returned report is partial when ctx is cancelled mid-run.
func (r *Runner) Run(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	report := &Report{RunID: uuid.NewString()}
	hooks := observability.Experiment()
	hooks.OnExperimentStart(ctx, report.RunID, opts.Cases())

	start := time.Now()
	err := r.run(ctx, opts, report)
	report.Duration = time.Since(start)
	hooks.OnExperimentComplete(ctx, report.RunID, report.Duration, err)

	if err != nil {
		return report, err
	}
	r.Logger.Info("experiment complete",
		"run", report.RunID,
		"cases", len(report.Cases),
		"failures", len(report.Failures()),
		"duration", report.Duration)
	return report, nil
}

func (r *Runner) run(ctx context.Context, opts Options, report *Report) error {
	for k := opts.Min; k <= opts.Max; k++ {
		before := disks.New(k)
		for _, alg := range opts.resolved {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := RunCase(ctx, alg, before)
			report.Cases = append(report.Cases, c)

			r.Logger.Debug("sorted",
				"algorithm", c.Algorithm,
				"light", k,
				"swaps", c.Swaps,
				"duration", c.Duration)
			if !c.OK() {
				r.Logger.Warn("check failed",
					"algorithm", c.Algorithm,
					"light", k,
					"sorted", c.Sorted,
					"conserved", c.Conserved,
					"swaps", c.Swaps,
					"expected", c.Expected)
			}
		}
	}
	return nil
}

// RunCase sorts before with alg, times it, and checks the result.
func RunCase(ctx context.Context, alg disks.Algorithm, before disks.Row) Case {
	hooks := observability.Sort()
	k := before.LightCount()
	hooks.OnSortStart(ctx, alg.Name, k)

	start := time.Now()
	res := alg.Sort(before)
	elapsed := time.Since(start)

	hooks.OnSortComplete(ctx, alg.Name, k, res.SwapCount(), elapsed)

	after := res.After()
	conserved := after.Len() == before.Len() &&
		after.Count(disks.Light) == before.Count(disks.Light) &&
		after.Count(disks.Dark) == before.Count(disks.Dark)

	return Case{
		Algorithm:  alg.Name,
		LightCount: k,
		Swaps:      res.SwapCount(),
		Expected:   before.Inversions(),
		Sorted:     after.IsSorted(),
		Conserved:  conserved,
		Duration:   elapsed,
	}
}
