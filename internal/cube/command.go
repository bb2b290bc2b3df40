package cube

import (
	"errors"
	"strings"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/pkg/types"
)

// ErrNothingToUndo is returned when undo is requested with an empty history.
var ErrNothingToUndo = errors.New("cube: no moves to undo")

// MoveCommand executes named moves against a cube and keeps an ordered
// history so they can be undone. Undo applies the algebraic inverse of the
// recorded move; there is no separate undo implementation.
type MoveCommand struct {
	cube    *Cube
	history []types.Move
}

// NewMoveCommand creates a command façade operating on the given cube.
func NewMoveCommand(c *Cube) *MoveCommand {
	return &MoveCommand{cube: c}
}

// Cube returns the cube being operated on.
func (mc *MoveCommand) Cube() *Cube {
	return mc.cube
}

// Execute applies a single move by notation token and records it.
// Returns types.ErrUnknownMove for tokens outside the 18-move vocabulary;
// nothing is applied in that case.
func (mc *MoveCommand) Execute(token string) error {
	m, err := types.ParseMove(token)
	if err != nil {
		return err
	}
	mc.cube.Apply(m)
	mc.history = append(mc.history, m)
	return nil
}

// ExecuteSequence applies a whitespace-separated sequence of move tokens.
// The sequence is validated up front, so an unknown token means no move
// from the sequence is applied.
func (mc *MoveCommand) ExecuteSequence(seq string) error {
	moves, err := types.ParseSequence(seq)
	if err != nil {
		return err
	}
	for _, m := range moves {
		mc.cube.Apply(m)
		mc.history = append(mc.history, m)
	}
	return nil
}

// UndoLast undoes the most recent move.
func (mc *MoveCommand) UndoLast() error {
	if len(mc.history) == 0 {
		return ErrNothingToUndo
	}
	last := mc.history[len(mc.history)-1]
	mc.history = mc.history[:len(mc.history)-1]
	mc.cube.Apply(last.Inverse())
	return nil
}

// UndoAll undoes every recorded move in reverse order.
func (mc *MoveCommand) UndoAll() {
	for len(mc.history) > 0 {
		_ = mc.UndoLast()
	}
}

// History returns the notation tokens of the applied moves, in order.
func (mc *MoveCommand) History() []string {
	return types.Notations(mc.history)
}

// SolutionString returns the history as a single space-separated string.
func (mc *MoveCommand) SolutionString() string {
	return strings.Join(mc.History(), " ")
}
