package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored solutions",
	Long:  `Display recently stored solutions with their method and cost.`,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solution-id]",
	Short: "Show details of a stored solution",
	Long:  `Display a stored solution in full. Use --last for the most recent one.`,
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solutions to list")
	historyShowCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent solution")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	solutions, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(solutions) == 0 {
		fmt.Println("No solutions stored yet. Run 'cubesolver solve' first.")
		return nil
	}

	fmt.Println(titleStyle.Render("Stored solutions"))
	for _, s := range solutions {
		method := s.Method
		if s.Heuristic != nil {
			method = fmt.Sprintf("%s/%s", s.Method, *s.Heuristic)
		}
		fmt.Printf("%s  %-20s %-14s %2d moves  %d nodes\n",
			s.SolutionID[:8],
			s.CreatedAt.Local().Format(time.DateTime),
			method,
			s.NumMoves,
			s.NodesExplored,
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if !historyLast && len(args) == 0 {
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
	if historyLast {
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

	fmt.Println(titleStyle.Render("Solution " + solution.SolutionID))
	fmt.Printf("Solved at:      %s\n", solution.CreatedAt.Local().Format(time.DateTime))
	method := solution.Method
	if solution.Heuristic != nil {
		method = fmt.Sprintf("%s (heuristic: %s)", solution.Method, *solution.Heuristic)
	}
	fmt.Printf("Method:         %s\n", method)
	fmt.Printf("State:          %s\n", solution.State)
	if solution.Moves == "" {
		fmt.Println("Moves:          (already solved)")
	} else {
		fmt.Printf("Moves:          %s\n", moveStyle.Render(solution.Moves))
	}
	fmt.Printf("Move count:     %d\n", solution.NumMoves)
	fmt.Printf("Nodes explored: %d\n", solution.NodesExplored)
	fmt.Printf("Duration:       %dms\n", solution.DurationMs)
	return nil
}
