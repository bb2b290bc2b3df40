package solver

import (
	"errors"
	"fmt"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
)

// ErrUnknownHeuristic is returned for heuristic names outside the known set.
var ErrUnknownHeuristic = errors.New("solver: unknown heuristic")

// Heuristic selects the distance estimate used by IDA* pruning.
type Heuristic int

const (
	// Misplaced counts facelets that differ from the solved state at the
	// same index, scaled down by 8. One turn repositions up to 20 facelets.
	Misplaced Heuristic = iota
	// WrongFace counts facelets whose color differs from the color their
	// face has when solved, scaled down by 12.
	WrongFace
)

func (h Heuristic) String() string {
	switch h {
	case Misplaced:
		return "misplaced"
	case WrongFace:
		return "wrong_face"
	default:
		return "unknown"
	}
}

// ParseHeuristic maps a heuristic name to its variant.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "misplaced", "":
		return Misplaced, nil
	case "wrong_face":
		return WrongFace, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// Estimate returns a cheap estimate of the moves remaining to solve the
// state. Both variants return 0 for a solved cube.
func (h Heuristic) Estimate(c *cube.Cube) int {
	switch h {
	case WrongFace:
		return wrongFaceEstimate(c)
	default:
		return misplacedEstimate(c)
	}
}

func misplacedEstimate(c *cube.Cube) int {
	state := c.String()
	misplaced := 0
	for i := 0; i < len(state); i++ {
		if state[i] != cube.SolvedState[i] {
			misplaced++
		}
	}
	return misplaced / 8
}

func wrongFaceEstimate(c *cube.Cube) int {
	state := c.String()
	wrong := 0
	for i := 0; i < len(state); i++ {
		// The solved constant is face-uniform, so its symbol at any index
		// of a face block is that face's color.
		if state[i] != cube.SolvedState[(i/9)*9] {
			wrong++
		}
	}
	return wrong / 12
}
