package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/observability"
)

// sortCommand creates the sort command.
func (c *CLI) sortCommand() *cobra.Command {
	var in rowInput

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort a row of disks and count the swaps",
		Long: `Sort a row of alternating disks with the alternate algorithm, the
lawnmower algorithm, or both, and print the final row and swap count.

By default the initialized row of --count light disks is sorted. --row
accepts any balanced row instead; such rows are not guaranteed to be fully
sorted within the algorithms' pass limits.`,
		Example: `  # Both algorithms on 3 light disks
  disksort sort -k 3

  # One algorithm on an explicit row
  disksort sort -a alternate --row "L D D L"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			before, err := c.resolveRow(cmd, &in)
			if err != nil {
				return err
			}
			algs, err := c.resolveAlgorithms(&in)
			if err != nil {
				return err
			}
			if !before.IsInitialized() {
				logger.Debug("input row is not in alternating order", "row", before.String())
			}

			hooks := observability.Sort()
			for i, alg := range algs {
				if i > 0 {
					printNewline()
				}
				hooks.OnSortStart(cmd.Context(), alg.Name, before.LightCount())
				start := time.Now()
				res := alg.Sort(before)
				elapsed := time.Since(start)
				hooks.OnSortComplete(cmd.Context(), alg.Name, before.LightCount(), res.SwapCount(), elapsed)

				logger.Debug("sorted", "algorithm", alg.Name, "light", before.LightCount(), "swaps", res.SwapCount(), "duration", elapsed)
				printResult(alg.Name, before, res)
			}
			return nil
		},
	}

	in.register(cmd)
	return cmd
}

// printResult prints one algorithm's outcome.
func printResult(name string, before disks.Row, res disks.Result) {
	after := res.After()
	if res.IsSorted() {
		printSuccess("%s", StyleTitle.Render(name))
	} else {
		printError("%s", StyleTitle.Render(name))
	}
	printKeyValue("before", renderRow(before, -1))
	printKeyValue("after", renderRow(after, -1))
	printKeyValue("swaps", StyleNumber.Render(fmt.Sprintf("%d", res.SwapCount())))
	if !res.IsSorted() {
		printWarning("row not fully sorted, %d inversions remain", after.Inversions())
	}
}
