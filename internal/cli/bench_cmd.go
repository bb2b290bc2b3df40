package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/bench"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/solver"
)

var (
	benchTrials  int
	benchDepths  []int
	benchSolvers string
	benchSeed    int64
	benchOutput  string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the solvers",
	Long: `Run the solvers against reproducible random scrambles and report
timing, node counts, and solution lengths.

BFS is exhaustive: keep its scramble depths small (it fails past its
depth ceiling of 8 and its memory grows as 18^depth).`,
	Example: `  cubesolver bench --solvers ida --depths 5,8 --trials 3
  cubesolver bench --solvers all --depths 4 -o bench.json`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVarP(&benchTrials, "trials", "n", 3, "Trials per solver/depth configuration")
	benchCmd.Flags().IntSliceVarP(&benchDepths, "depths", "d", []int{5, 8}, "Scramble depths to test")
	benchCmd.Flags().StringVar(&benchSolvers, "solvers", "ida", "Solvers to benchmark: bfs, ida, twophase, all")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 42, "Random seed for reproducible scrambles")
	benchCmd.Flags().StringVarP(&benchOutput, "output", "o", "", "Write results to a JSON file")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var solvers []solver.Solver
	switch benchSolvers {
	case "bfs":
		solvers = append(solvers, solver.NewBFS())
	case "ida":
		solvers = append(solvers, solver.NewIDA(solver.Misplaced))
	case "twophase":
		solvers = append(solvers, solver.NewTwoPhase(cfg.TwoPhaseCommand, cfg.TwoPhaseFallback))
	case "all":
		solvers = append(solvers,
			solver.NewBFS(),
			solver.NewIDA(solver.Misplaced),
			solver.NewTwoPhase(cfg.TwoPhaseCommand, cfg.TwoPhaseFallback),
		)
	default:
		return fmt.Errorf("unknown solver selection %q", benchSolvers)
	}

	runner := bench.NewRunner(benchSeed)
	suite := runner.RunSuite(solvers, benchDepths, benchTrials)

	fmt.Println(suite.Summary())

	if benchOutput != "" {
		if err := suite.WriteFile(benchOutput); err != nil {
			return err
		}
		fmt.Printf("Results saved to %s\n", benchOutput)
	}
	return nil
}
