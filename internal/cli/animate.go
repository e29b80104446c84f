package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
)

// animateCommand creates the animate command.
func (c *CLI) animateCommand() *cobra.Command {
	var (
		in       rowInput
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Play a sort step by step in the terminal",
		Long: `Animate one algorithm swap by swap.

Keys: space pauses or resumes, ←/→ step while paused, r restarts, q quits.`,
		Example: `  disksort animate -a alternate -k 6
  disksort animate -k 8 --interval 50ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := c.resolveAlgorithm(&in)
			if err != nil {
				return err
			}
			before, err := c.resolveTracedRow(cmd, &in)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("interval") {
				interval = c.Config.Animate.Interval.Duration
			}
			if interval <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "interval must be positive, got %s", interval)
			}

			_, steps := alg.Trace(before)
			m := newAnimateModel(alg.Name, before, steps, interval)
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", 0, "delay between swaps (default from config)")

	return cmd
}

// =============================================================================
// animateModel - bubbletea model stepping through a trace
// =============================================================================

// tickMsg advances the animation. gen identifies the tick chain so that a
// pause followed by a quick resume never runs two chains at once.
type tickMsg struct{ gen int }

type animateModel struct {
	name     string
	initial  disks.Row
	steps    []disks.Step
	interval time.Duration

	// pos is the number of steps applied; 0 shows the initial row.
	pos     int
	playing bool
	gen     int
}

func newAnimateModel(name string, initial disks.Row, steps []disks.Step, interval time.Duration) animateModel {
	return animateModel{
		name:     name,
		initial:  initial,
		steps:    steps,
		interval: interval,
		playing:  len(steps) > 0,
	}
}

func (m animateModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// play starts a new tick chain.
func (m animateModel) play() (animateModel, tea.Cmd) {
	m.playing = true
	m.gen++
	return m, m.tick()
}

func (m animateModel) Init() tea.Cmd {
	if m.playing {
		return m.tick()
	}
	return nil
}

func (m animateModel) done() bool {
	return m.pos >= len(m.steps)
}

func (m animateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.playing || msg.gen != m.gen {
			return m, nil
		}
		if !m.done() {
			m.pos++
		}
		if m.done() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if m.done() {
				return m, nil
			}
			if m.playing {
				m.playing = false
				return m, nil
			}
			return m.play()
		case "right", "l":
			if !m.playing && !m.done() {
				m.pos++
			}
		case "left", "h":
			if !m.playing && m.pos > 0 {
				m.pos--
			}
		case "r":
			m.pos = 0
			if len(m.steps) > 0 {
				return m.play()
			}
		}
	}
	return m, nil
}

// current returns the row on screen and the index of the last swap, or -1.
func (m animateModel) current() (disks.Row, int) {
	if m.pos == 0 {
		return m.initial, -1
	}
	s := m.steps[m.pos-1]
	return s.After, s.Index
}

func (m animateModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.name))
	b.WriteString("\n\n")

	row, swapped := m.current()
	b.WriteString("  ")
	b.WriteString(renderRow(row, swapped))
	b.WriteString("\n\n")

	status := fmt.Sprintf("swap %d/%d", m.pos, len(m.steps))
	if m.pos > 0 {
		s := m.steps[m.pos-1]
		status += fmt.Sprintf("  pass %d %s", s.Pass, s.Direction)
	}
	switch {
	case m.done():
		status += "  " + styleIconSuccess.Render("done")
	case !m.playing:
		status += "  paused"
	}
	b.WriteString(StyleDim.Render(status))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("space pause  ←/→ step  r restart  q quit"))
	b.WriteString("\n")

	return b.String()
}
