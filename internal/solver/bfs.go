package solver

import (
	"fmt"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/pkg/types"
)

// DefaultBFSDepth is the hard ceiling on BFS path length. The frontier
// grows as 18^depth, so this is a practical bound, not a claim that no
// solution exists beyond it.
const DefaultBFSDepth = 8

// BFS is an exhaustive level-order solver. It guarantees a shortest
// solution (in move count) for any state within its depth ceiling, at the
// cost of memory proportional to the full frontier.
type BFS struct {
	MaxDepth int
}

// NewBFS creates a BFS solver with the default depth ceiling.
func NewBFS() *BFS {
	return &BFS{MaxDepth: DefaultBFSDepth}
}

// Name returns the solver name.
func (b *BFS) Name() string {
	return "bfs"
}

type bfsNode struct {
	cube  *cube.Cube
	moves []string
}

// Solve runs level-order search over the state graph induced by the 18
// moves. Every dequeued state counts as one explored node. Fails with
// ErrDepthExceeded once a path reaches the depth ceiling.
func (b *BFS) Solve(c *cube.Cube) ([]string, int, error) {
	if c.IsSolved() {
		return []string{}, 1, nil
	}

	queue := []bfsNode{{cube: c.Clone()}}
	// Visited holds every state encoding ever enqueued, inserted at
	// enqueue time so symmetric paths are never re-explored.
	visited := map[string]struct{}{c.Key(): {}}
	nodes := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		nodes++

		if len(current.moves) >= b.MaxDepth {
			return nil, nodes, fmt.Errorf("%w (%d moves)", ErrDepthExceeded, b.MaxDepth)
		}

		for _, m := range types.AllMoves {
			next := current.cube.Clone()
			next.Apply(m)

			if next.IsSolved() {
				return appendPath(current.moves, m.Notation()), nodes, nil
			}

			key := next.Key()
			if _, seen := visited[key]; !seen {
				visited[key] = struct{}{}
				queue = append(queue, bfsNode{cube: next, moves: appendPath(current.moves, m.Notation())})
			}
		}
	}

	// Unreachable in practice: the depth ceiling fires first.
	return nil, nodes, ErrNoSolution
}

// appendPath copies the path before extending it so queued nodes never
// share backing arrays.
func appendPath(moves []string, next string) []string {
	path := make([]string, len(moves)+1)
	copy(path, moves)
	path[len(moves)] = next
	return path
}
