// Package scramble generates reproducible random scrambles over the
// 18-move vocabulary.
package scramble

import (
	"math/rand"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/pkg/types"
)

// Generator produces random move sequences. The same seed always yields
// the same sequences, which benchmarking relies on.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator with the given seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Moves returns n uniformly random moves from the 18-move vocabulary.
func (g *Generator) Moves(n int) []types.Move {
	moves := make([]types.Move, n)
	for i := range moves {
		moves[i] = types.AllMoves[g.rng.Intn(len(types.AllMoves))]
	}
	return moves
}

// Sequence returns n random moves as notation tokens.
func (g *Generator) Sequence(n int) []string {
	return types.Notations(g.Moves(n))
}

// Scrambled returns a solved cube with n random moves applied, plus the
// scramble that produced it.
func (g *Generator) Scrambled(n int) (*cube.Cube, []string) {
	moves := g.Moves(n)
	c := cube.New()
	c.ApplyMoves(moves)
	return c, types.Notations(moves)
}
