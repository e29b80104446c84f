// Package cli implements the disksort command-line interface.
//
// This package provides commands for sorting alternating disk rows, comparing
// algorithms across row sizes, listing and rendering swap traces, and
// animating a sort in the terminal. The CLI is built using cobra and logs via
// charmbracelet/log.
//
// # Commands
//
//   - sort: Sort one row with one or both algorithms
//   - compare: Run both algorithms over a range of sizes and check results
//   - trace: List every swap, optionally writing DOT or SVG
//   - animate: Step through a sort interactively
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Defaults come from a TOML file (see package config), located with
// --config or under $XDG_CONFIG_HOME/disksort. Flags override it.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/disksort/pkg/buildinfo"
	"github.com/matzehuels/disksort/pkg/config"
	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "disksort"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// stdout receives command output. Tests replace it.
var stdout io.Writer = os.Stdout

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and the built-in
// configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "disksort sorts alternating light and dark disks",
		Long:         `disksort sorts a row of alternating light and dark disks so that every light disk ends up on the left, using only adjacent swaps, and reports how many swaps each algorithm needed.`,
		Version:      buildinfo.Resolved(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/disksort/config.toml)")

	root.AddCommand(c.sortCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.animateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and attaches the logger to the command
// context.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "algorithm", cfg.Algorithm, "count", cfg.Count)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Input Helpers
// =============================================================================

// rowInput holds the flags shared by commands that sort a single row.
type rowInput struct {
	algorithm string
	count     int
	row       string
}

func (in *rowInput) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.algorithm, "algorithm", "a", "", "algorithm: alternate, lawnmower, or all (default from config)")
	cmd.Flags().IntVarP(&in.count, "count", "k", 0, "number of light disks (default from config)")
	cmd.Flags().StringVarP(&in.row, "row", "r", "", `explicit row, e.g. "L D L D" (overrides --count)`)
}

// resolveRow builds the input row from --row or --count, falling back to
// the configured count.
func (c *CLI) resolveRow(cmd *cobra.Command, in *rowInput) (disks.Row, error) {
	if in.row != "" {
		return disks.Parse(in.row)
	}
	count := c.Config.Count
	if cmd.Flags().Changed("count") {
		count = in.count
	}
	if err := errors.ValidateLightCount(count); err != nil {
		return disks.Row{}, err
	}
	return disks.New(count), nil
}

// resolveTracedRow is resolveRow for commands that keep a row snapshot per
// swap. The light count is capped far lower than for plain sorting.
func (c *CLI) resolveTracedRow(cmd *cobra.Command, in *rowInput) (disks.Row, error) {
	row, err := c.resolveRow(cmd, in)
	if err != nil {
		return disks.Row{}, err
	}
	if err := errors.ValidateTraceLightCount(row.LightCount()); err != nil {
		return disks.Row{}, err
	}
	return row, nil
}

// resolveAlgorithms returns the algorithms named by --algorithm or the config.
func (c *CLI) resolveAlgorithms(in *rowInput) ([]disks.Algorithm, error) {
	name := c.Config.Algorithm
	if in.algorithm != "" {
		name = in.algorithm
	}
	return config.ResolveAlgorithms(name)
}

// resolveAlgorithm returns a single algorithm. When neither the flag nor the
// config names one, the lawnmower algorithm is used.
func (c *CLI) resolveAlgorithm(in *rowInput) (disks.Algorithm, error) {
	algs, err := c.resolveAlgorithms(in)
	if err != nil {
		return disks.Algorithm{}, err
	}
	if len(algs) == 1 {
		return algs[0], nil
	}
	if in.algorithm != "" {
		return disks.Algorithm{}, errors.New(errors.ErrCodeInvalidAlgorithm, "this command needs a single algorithm, got %q", in.algorithm)
	}
	return disks.Lookup(disks.AlgorithmLawnmower)
}
