package solver

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/pkg/types"
)

// DefaultTwoPhaseCommand is the external two-phase solver binary looked up
// on PATH when no explicit command is configured.
const DefaultTwoPhaseCommand = "kociemba"

// TwoPhase adapts an external two-phase solver binary to the Solver
// contract. The binary is invoked with the cube state in URFDLB facelet
// order as its single argument and must print a whitespace-separated move
// sequence in standard notation.
//
// When Fallback is enabled, any failure to run the binary or parse its
// output falls back to IDA* with the misplaced heuristic; otherwise the
// failure is reported as ErrUnavailable.
type TwoPhase struct {
	Command  string
	fallback *IDA
}

// NewTwoPhase creates a two-phase adapter running the given command.
// An empty command uses DefaultTwoPhaseCommand.
func NewTwoPhase(command string, fallback bool) *TwoPhase {
	if command == "" {
		command = DefaultTwoPhaseCommand
	}
	t := &TwoPhase{Command: command}
	if fallback {
		t.fallback = NewIDA(Misplaced)
	}
	return t
}

// Name returns the solver name.
func (t *TwoPhase) Name() string {
	return "twophase"
}

// Solve delegates to the external binary. The external solver does not
// report search effort, so nodes explored is 1 for a delegated solve.
func (t *TwoPhase) Solve(c *cube.Cube) ([]string, int, error) {
	if c.IsSolved() {
		return []string{}, 1, nil
	}

	moves, err := t.run(c)
	if err != nil {
		if t.fallback != nil {
			return t.fallback.Solve(c)
		}
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return moves, 1, nil
}

func (t *TwoPhase) run(c *cube.Cube) ([]string, error) {
	out, err := exec.Command(t.Command, ToURFDLB(c)).Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", t.Command, err)
	}

	moves, err := types.ParseSequence(string(out))
	if err != nil {
		return nil, fmt.Errorf("parsing %s output: %w", t.Command, err)
	}
	return types.Notations(moves), nil
}

// colorToFacelet maps a color symbol to the letter of the face that color
// occupies when solved, as two-phase solvers expect.
var colorToFacelet = map[byte]byte{
	'W': 'U', 'R': 'R', 'G': 'F', 'Y': 'D', 'O': 'L', 'B': 'B',
}

var faceletToColor = map[byte]byte{
	'U': 'W', 'R': 'R', 'F': 'G', 'D': 'Y', 'L': 'O', 'B': 'B',
}

// urfdlbOrder lists this package's face indices in the U R F D L B order
// used by two-phase solvers.
var urfdlbOrder = []int{
	cube.UpFace, cube.RightFace, cube.FrontFace,
	cube.DownFace, cube.LeftFace, cube.BackFace,
}

// ToURFDLB converts a cube to the external two-phase facelet string:
// faces reordered U R F D L B and colors replaced by face letters.
func ToURFDLB(c *cube.Cube) string {
	var sb strings.Builder
	sb.Grow(54)
	for _, face := range urfdlbOrder {
		block := c.Face(face)
		for i := 0; i < len(block); i++ {
			sb.WriteByte(colorToFacelet[block[i]])
		}
	}
	return sb.String()
}

// FromURFDLB converts an external URFDLB facelet string back to a cube.
func FromURFDLB(s string) (*cube.Cube, error) {
	if len(s) != 54 {
		return nil, fmt.Errorf("%w: got %d", cube.ErrInvalidLength, len(s))
	}

	blocks := make([][]byte, 6)
	for i, face := range urfdlbOrder {
		block := make([]byte, 9)
		for j := 0; j < 9; j++ {
			color, ok := faceletToColor[s[i*9+j]]
			if !ok {
				return nil, fmt.Errorf("%w: %q at index %d", cube.ErrInvalidSymbol, s[i*9+j], i*9+j)
			}
			block[j] = color
		}
		blocks[face] = block
	}

	var sb strings.Builder
	sb.Grow(54)
	for face := 0; face < 6; face++ {
		sb.Write(blocks[face])
	}
	return cube.Parse(sb.String())
}
