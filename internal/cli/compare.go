package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/disksort/pkg/experiment"
)

// compareCommand creates the compare command.
func (c *CLI) compareCommand() *cobra.Command {
	var (
		algorithm string
		lo, hi    int
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare algorithms across row sizes",
		Long: `Sort the initialized row for every light count in [--min, --max] with
each algorithm, verify that every result is sorted with the minimum number of
swaps, and print the swap counts side by side.`,
		Example: `  disksort compare --min 1 --max 10
  disksort compare -a lawnmower --max 64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := experiment.Options{Min: c.Config.Compare.Min, Max: c.Config.Compare.Max}
			if cmd.Flags().Changed("min") {
				opts.Min = lo
			}
			if cmd.Flags().Changed("max") {
				opts.Max = hi
			}

			algs, err := c.resolveAlgorithms(&rowInput{algorithm: algorithm})
			if err != nil {
				return err
			}
			for _, a := range algs {
				opts.Algorithms = append(opts.Algorithms, a.Name)
			}

			runner := experiment.NewRunner(loggerFromContext(cmd.Context()))
			prog := newProgress(runner.Logger)

			spinner := newSpinnerWithContext(cmd.Context(), "Sorting...")
			spinner.Start()
			report, err := runner.Run(cmd.Context(), opts)
			spinner.Stop()
			if err != nil {
				return err
			}
			prog.done("compared", "run", report.RunID, "cases", len(report.Cases))

			fmt.Fprintln(stdout, renderReport(report, opts.Algorithms))
			for _, name := range opts.Algorithms {
				printInfo("%s: %s swaps in total", name, StyleNumber.Render(strconv.Itoa(report.TotalSwaps(name))))
			}

			if failures := report.Failures(); len(failures) > 0 {
				return fmt.Errorf("%d of %d cases failed", len(failures), len(report.Cases))
			}
			printSuccess("all %d cases sorted with the minimum number of swaps", len(report.Cases))
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "algorithm: alternate, lawnmower, or all (default from config)")
	cmd.Flags().IntVar(&lo, "min", 0, "smallest light count (default from config)")
	cmd.Flags().IntVar(&hi, "max", 0, "largest light count (default from config)")

	return cmd
}

// renderReport lays out one row per light count with a swap column per
// algorithm. Failed cases are shown in red.
func renderReport(report *experiment.Report, algorithms []string) string {
	type line struct {
		expected int
		swaps    map[string]int
		ok       bool
	}
	var order []int
	lines := make(map[int]*line)
	for _, cs := range report.Cases {
		l, found := lines[cs.LightCount]
		if !found {
			l = &line{expected: cs.Expected, swaps: make(map[string]int), ok: true}
			lines[cs.LightCount] = l
			order = append(order, cs.LightCount)
		}
		l.swaps[cs.Algorithm] = cs.Swaps
		l.ok = l.ok && cs.OK()
	}

	headers := append([]string{"k", "minimum"}, algorithms...)
	rows := make([][]string, 0, len(order))
	failed := make(map[int]bool)
	for i, k := range order {
		l := lines[k]
		row := []string{strconv.Itoa(k), strconv.Itoa(l.expected)}
		for _, name := range algorithms {
			row = append(row, strconv.Itoa(l.swaps[name]))
		}
		rows = append(rows, row)
		failed[i] = !l.ok
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if failed[row] {
				return cellStyle.Foreground(colorRed)
			}
			if col == 1 {
				return cellStyle.Foreground(colorGray)
			}
			return cellStyle
		})

	return t.Render()
}
