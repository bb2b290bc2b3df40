package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/storage"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/pkg/types"
)

var (
	playSpeed float64
	playStep  bool
	playLast  bool
)

var playCmd = &cobra.Command{
	Use:   "play [solution-id]",
	Short: "Replay a stored solution step by step",
	Long: `Animate a stored solution: starting from its scrambled state, apply
the solution one move at a time in an interactive terminal view.

Keyboard:
  space - pause/resume (or advance in step mode)
  n     - advance one move
  q/Esc - quit`,
	Example: `  cubesolver play --last
  cubesolver play 4f1f9c22 --speed 2.0
  cubesolver play --last --step`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Float64VarP(&playSpeed, "speed", "x", 1.0, "Playback speed multiplier")
	playCmd.Flags().BoolVarP(&playStep, "step", "t", false, "Step through moves manually")
	playCmd.Flags().BoolVar(&playLast, "last", false, "Replay the most recent solution")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !playLast && len(args) == 0 {
		return fmt.Errorf("provide a solution id or --last")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var solution *storage.Solution
	if playLast {
		solution, err = repo.GetLast()
	} else {
		solution, err = repo.Get(args[0])
	}
	if err != nil {
		return err
	}
	if solution == nil {
		return fmt.Errorf("solution not found")
	}

	c, err := cube.Parse(solution.State)
	if err != nil {
		return err
	}
	moves, err := types.ParseSequence(solution.Moves)
	if err != nil {
		return err
	}

	model := newPlayModel(c, moves, playSpeed, playStep)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

// Playback model

type playTickMsg time.Time

type playModel struct {
	cube     *cube.Cube
	moves    []types.Move
	idx      int
	speed    float64
	stepMode bool
	paused   bool
	quitting bool
}

func newPlayModel(c *cube.Cube, moves []types.Move, speed float64, stepMode bool) *playModel {
	return &playModel{
		cube:     c,
		moves:    moves,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
	}
}

func (m *playModel) Init() tea.Cmd {
	if m.stepMode {
		return nil
	}
	return m.scheduleTick()
}

func (m *playModel) scheduleTick() tea.Cmd {
	if m.idx >= len(m.moves) {
		return nil
	}
	delay := time.Duration(float64(800*time.Millisecond) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m *playModel) advance() {
	if m.idx < len(m.moves) {
		m.cube.Apply(m.moves[m.idx])
		m.idx++
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ":
			if m.stepMode {
				m.advance()
				return m, nil
			}
			m.paused = !m.paused
			if !m.paused {
				return m, m.scheduleTick()
			}
			return m, nil

		case "n":
			m.advance()
			return m, nil
		}

	case playTickMsg:
		if m.paused || m.stepMode {
			return m, nil
		}
		m.advance()
		return m, m.scheduleTick()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Solution replay"))
	sb.WriteString("\n\n")
	sb.WriteString(renderCube(m.cube))
	sb.WriteString("\n")

	if len(m.moves) == 0 {
		sb.WriteString(statusStyle.Render("Already solved, nothing to replay"))
		sb.WriteString("\n")
	} else {
		var tokens []string
		for i, mv := range m.moves {
			tok := mv.Notation()
			if i == m.idx {
				tok = moveStyle.Render("[" + tok + "]")
			} else if i < m.idx {
				tok = statusStyle.Render(tok)
			}
			tokens = append(tokens, tok)
		}
		sb.WriteString(strings.Join(tokens, " "))
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(fmt.Sprintf("move %d/%d", m.idx, len(m.moves))))
		sb.WriteString("\n")
	}

	if m.idx >= len(m.moves) && m.cube.IsSolved() {
		sb.WriteString(moveStyle.Render("Solved!"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	switch {
	case m.stepMode:
		sb.WriteString(helpStyle.Render("space/n: next move  q: quit"))
	case m.paused:
		sb.WriteString(helpStyle.Render("paused - space: resume  n: step  q: quit"))
	default:
		sb.WriteString(helpStyle.Render("space: pause  n: step  q: quit"))
	}
	sb.WriteString("\n")

	return sb.String()
}
