package solver

import (
	"fmt"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/pkg/types"
)

// DefaultIDADepth is the largest depth limit IDA* will try before giving up.
const DefaultIDADepth = 20

// IDA is an iterative-deepening A* solver. It runs depth-first searches
// with successively larger depth limits, pruning any branch whose
// f = g + h exceeds the current limit. Memory is O(depth); the repeated
// work across limits is the price for not holding a BFS frontier.
type IDA struct {
	Heuristic Heuristic
	MaxDepth  int

	nodes int
}

// NewIDA creates an IDA* solver with the given heuristic and the default
// depth ceiling.
func NewIDA(h Heuristic) *IDA {
	return &IDA{Heuristic: h, MaxDepth: DefaultIDADepth}
}

// Name returns the solver name.
func (s *IDA) Name() string {
	return "ida"
}

// Solve searches with depth limits 1..MaxDepth. Every recursive call,
// including the one that discovers the solved state, counts as one
// explored node; the counter resets per Solve call, not per limit.
func (s *IDA) Solve(c *cube.Cube) ([]string, int, error) {
	s.nodes = 0

	if c.IsSolved() {
		return []string{}, 0, nil
	}

	for limit := 1; limit <= s.MaxDepth; limit++ {
		if moves, found := s.search(c.Clone(), nil, 0, limit); found {
			return moves, s.nodes, nil
		}
	}

	return nil, s.nodes, fmt.Errorf("%w within %d moves", ErrNoSolution, s.MaxDepth)
}

// search explores one branch depth-first under the current limit. path
// holds the moves applied so far; g is its length.
func (s *IDA) search(c *cube.Cube, path []types.Move, g, limit int) ([]string, bool) {
	s.nodes++

	if c.IsSolved() {
		return types.Notations(path), true
	}
	if g >= limit {
		return nil, false
	}

	for _, m := range types.AllMoves {
		// Last-move pruning: turning the face just turned again either
		// cancels or merges with the previous move, so skip it.
		if len(path) > 0 && path[len(path)-1].Face == m.Face {
			continue
		}

		next := c.Clone()
		next.Apply(m)

		if g+1+s.Heuristic.Estimate(next) > limit {
			continue
		}

		if moves, found := s.search(next, append(path, m), g+1, limit); found {
			return moves, true
		}
	}

	return nil, false
}
