// Package bench drives solvers against reproducible random scrambles and
// collects timing, node, and solution-length statistics.
package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/scramble"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/solver"
)

// Trial records a single scramble-and-solve attempt.
type Trial struct {
	Scramble      []string `json:"scramble"`
	NumMoves      int      `json:"num_moves"`
	TimeSeconds   float64  `json:"time_seconds"`
	NodesExplored int      `json:"nodes_explored"`
	Success       bool     `json:"success"`
	Error         string   `json:"error,omitempty"`
}

// Stats aggregates the successful trials of one run.
type Stats struct {
	SuccessRate       float64 `json:"success_rate"`
	AvgTimeSeconds    float64 `json:"avg_time_seconds,omitempty"`
	MinTimeSeconds    float64 `json:"min_time_seconds,omitempty"`
	MaxTimeSeconds    float64 `json:"max_time_seconds,omitempty"`
	AvgSolutionLength float64 `json:"avg_solution_length,omitempty"`
	MinSolutionLength int     `json:"min_solution_length,omitempty"`
	MaxSolutionLength int     `json:"max_solution_length,omitempty"`
}

// Run holds all trials for one solver at one scramble depth.
type Run struct {
	Solver        string  `json:"solver"`
	NumTrials     int     `json:"num_trials"`
	ScrambleDepth int     `json:"scramble_depth"`
	Trials        []Trial `json:"trials"`
	Stats         Stats   `json:"stats"`
}

// Suite is the complete result set of a benchmark invocation.
type Suite struct {
	Seed int64 `json:"seed"`
	Runs []Run `json:"configurations"`
}

// Runner benchmarks solvers with scrambles from a seeded generator.
type Runner struct {
	seed int64
	gen  *scramble.Generator
}

// NewRunner creates a runner whose scrambles are reproducible from seed.
func NewRunner(seed int64) *Runner {
	return &Runner{seed: seed, gen: scramble.New(seed)}
}

// Benchmark runs trials of one solver at one scramble depth.
func (r *Runner) Benchmark(s solver.Solver, trials, depth int) Run {
	run := Run{
		Solver:        s.Name(),
		NumTrials:     trials,
		ScrambleDepth: depth,
	}

	for i := 0; i < trials; i++ {
		c, seq := r.gen.Scrambled(depth)

		start := time.Now()
		moves, nodes, err := s.Solve(c)
		elapsed := time.Since(start)

		trial := Trial{
			Scramble:    seq,
			TimeSeconds: elapsed.Seconds(),
		}
		if err != nil {
			trial.Error = err.Error()
		} else {
			trial.Success = true
			trial.NumMoves = len(moves)
			trial.NodesExplored = nodes
		}
		run.Trials = append(run.Trials, trial)
	}

	run.Stats = computeStats(run.Trials)
	return run
}

// RunSuite benchmarks every solver at every depth.
func (r *Runner) RunSuite(solvers []solver.Solver, depths []int, trials int) *Suite {
	suite := &Suite{Seed: r.seed}
	for _, s := range solvers {
		for _, depth := range depths {
			suite.Runs = append(suite.Runs, r.Benchmark(s, trials, depth))
		}
	}
	return suite
}

func computeStats(trials []Trial) Stats {
	var ok []Trial
	for _, t := range trials {
		if t.Success {
			ok = append(ok, t)
		}
	}

	stats := Stats{}
	if len(trials) > 0 {
		stats.SuccessRate = float64(len(ok)) / float64(len(trials))
	}
	if len(ok) == 0 {
		return stats
	}

	stats.MinTimeSeconds = ok[0].TimeSeconds
	stats.MinSolutionLength = ok[0].NumMoves
	var timeSum float64
	var moveSum int
	for _, t := range ok {
		timeSum += t.TimeSeconds
		moveSum += t.NumMoves
		if t.TimeSeconds < stats.MinTimeSeconds {
			stats.MinTimeSeconds = t.TimeSeconds
		}
		if t.TimeSeconds > stats.MaxTimeSeconds {
			stats.MaxTimeSeconds = t.TimeSeconds
		}
		if t.NumMoves < stats.MinSolutionLength {
			stats.MinSolutionLength = t.NumMoves
		}
		if t.NumMoves > stats.MaxSolutionLength {
			stats.MaxSolutionLength = t.NumMoves
		}
	}
	stats.AvgTimeSeconds = timeSum / float64(len(ok))
	stats.AvgSolutionLength = float64(moveSum) / float64(len(ok))
	return stats
}

// WriteFile writes the suite as indented JSON, creating parent
// directories as needed.
func (s *Suite) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding benchmark results: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing benchmark results: %w", err)
	}
	return nil
}

// Summary returns a human-readable digest of the suite.
func (s *Suite) Summary() string {
	var sb strings.Builder
	sb.WriteString("Benchmark summary\n")
	for _, run := range s.Runs {
		fmt.Fprintf(&sb, "\n%s (depth=%d, trials=%d):\n", run.Solver, run.ScrambleDepth, run.NumTrials)
		if run.Stats.SuccessRate == 0 {
			sb.WriteString("  no successful trials\n")
			continue
		}
		fmt.Fprintf(&sb, "  success rate:        %.0f%%\n", run.Stats.SuccessRate*100)
		fmt.Fprintf(&sb, "  avg time:            %.4fs\n", run.Stats.AvgTimeSeconds)
		fmt.Fprintf(&sb, "  avg solution length: %.1f moves\n", run.Stats.AvgSolutionLength)
	}
	return sb.String()
}
