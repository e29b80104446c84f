// Package experiment runs the disk sorting algorithms over a range of row
// sizes and checks every result.
//
// For each light count k in [Options.Min, Options.Max] and each selected
// algorithm, the [Runner] sorts the initialized row of 2k disks and verifies
// that:
//   - the final row is sorted
//   - the light and dark counts are unchanged
//   - the swap count equals the inversion count of the input, k(k-1)/2
//
// Failed checks do not abort the run; they are recorded on the [Case] so a
// report shows every size at once. Cancellation is checked between cases.
//
//	r := experiment.NewRunner(logger)
//	report, err := r.Run(ctx, experiment.Options{Min: 1, Max: 32})
package experiment
