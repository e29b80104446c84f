package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
	"github.com/matzehuels/disksort/pkg/trace"
)

// traceCommand creates the trace command.
func (c *CLI) traceCommand() *cobra.Command {
	var (
		in      rowInput
		dotPath string
		svgPath string
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "List every swap an algorithm makes",
		Long: `Run one algorithm and print each swap with its pass, direction, and the
row after the swap. The trace can also be written as a Graphviz DOT file or
rendered to SVG.`,
		Example: `  disksort trace -a alternate -k 3
  disksort trace -k 5 --svg lawnmower.svg --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			alg, err := c.resolveAlgorithm(&in)
			if err != nil {
				return err
			}
			before, err := c.resolveTracedRow(cmd, &in)
			if err != nil {
				return err
			}

			res, steps := alg.Trace(before)
			logger.Debug("traced", "algorithm", alg.Name, "steps", len(steps))

			if !quiet {
				printTrace(alg.Name, before, steps)
			}
			printResult(alg.Name, before, res)

			if dotPath != "" {
				if err := writeOutput(dotPath, []byte(trace.ToDOT(before, steps))); err != nil {
					return err
				}
				printInfo("wrote %s", dotPath)
			}
			if svgPath != "" {
				svg, err := trace.RenderSVG(cmd.Context(), before, steps)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "render trace")
				}
				if err := writeOutput(svgPath, svg); err != nil {
					return err
				}
				printInfo("wrote %s", svgPath)
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the trace as Graphviz DOT to this file")
	cmd.Flags().StringVar(&svgPath, "svg", "", "render the trace as SVG to this file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not list individual steps")

	return cmd
}

// printTrace lists each step with the swapped pair highlighted.
func printTrace(name string, before disks.Row, steps []disks.Step) {
	fmt.Fprintf(stdout, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-17s", "start")), renderRow(before, -1))
	for _, s := range steps {
		label := fmt.Sprintf("pass %-3d %-8s", s.Pass, s.Direction)
		fmt.Fprintf(stdout, "%s  %s\n", StyleDim.Render(label), renderRow(s.After, s.Index))
	}
	printInfo("%s made %d swaps", name, len(steps))
}

func writeOutput(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
