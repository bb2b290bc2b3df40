// Package solver implements the search solvers for the cube: exhaustive
// breadth-first search, heuristic-guided IDA*, and an adapter for an
// external two-phase solver.
package solver

import (
	"errors"
	"fmt"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
)

// Search-exhaustion and adapter errors. These are expected, recoverable
// outcomes; a caller may react by switching solver or raising a bound.
var (
	ErrDepthExceeded = errors.New("solver: no solution within BFS depth ceiling")
	ErrNoSolution    = errors.New("solver: no solution found")
	ErrUnavailable   = errors.New("solver: two-phase solver unavailable")
	ErrUnknownMethod = errors.New("solver: unknown solving method")
)

// Solver is the contract every solving strategy satisfies: produce an
// ordered sequence of move notations that brings the input state to
// solved, plus a count of states examined during search. An already
// solved input returns an empty sequence without searching.
type Solver interface {
	Name() string
	Solve(c *cube.Cube) (moves []string, nodesExplored int, err error)
}

// Select builds a solver for a method name: "bfs", "ida" (with the given
// heuristic name), or "twophase" (running the given external command,
// falling back to IDA* when fallback is set).
func Select(method, heuristic, twoPhaseCommand string, fallback bool) (Solver, error) {
	switch method {
	case "bfs":
		return NewBFS(), nil
	case "ida":
		h, err := ParseHeuristic(heuristic)
		if err != nil {
			return nil, err
		}
		return NewIDA(h), nil
	case "twophase":
		return NewTwoPhase(twoPhaseCommand, fallback), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}
