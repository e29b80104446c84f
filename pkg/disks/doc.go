// Package disks solves the alternating disks problem.
//
// A [Row] holds 2k disks, k light and k dark. A freshly constructed row
// alternates light and dark starting with light:
//
//	L D L D L D
//
// The goal is to move every light disk to the left and every dark disk to
// the right using only swaps of adjacent disks:
//
//	L L L D D D
//
// # Algorithms
//
// Two algorithms are provided. Both take a row by value, never modify the
// caller's row, and return a [Result] holding the final row and the number of
// swaps performed:
//
//   - [SortAlternate]: odd-even transposition. Pass i compares the pairs
//     starting at even offsets when i is even and at odd offsets when i is odd,
//     for k+1 passes in total.
//   - [SortLawnmower]: bidirectional bubble passes. Each iteration scans left
//     to right and then right to left, stopping as soon as an iteration makes
//     no swap.
//
// Every swap of a dark disk with the light disk to its right removes exactly
// one inversion, so from the initialized row both algorithms perform
// k(k-1)/2 swaps, the minimum possible. [Row.Inversions] reports that lower
// bound for any row.
//
// # Tracing
//
// [TraceAlternate] and [TraceLawnmower] run the same algorithms and also
// record a [Step] for every swap, which the CLI uses for step listings,
// animation, and DOT rendering.
//
// # Preconditions
//
// [Row.Get] and [Row.Swap] panic on out-of-range indices. These are
// programming errors; the sorts never trigger them for a well-formed row.
// Rows built from user input go through [Parse] or [FromColors], which return
// errors instead.
package disks
