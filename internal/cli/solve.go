package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/solver"
)

var (
	solveState     string
	solveFile      string
	solveMethod    string
	solveHeuristic string
	solveOutput    string
	solveNoSave    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a cube state",
	Long: `Solve a 54-character cube state and print the move sequence.

The state can be passed directly with --state or loaded from a JSON file
({"state": "WWW..."}) with --file. Results are stored in the database
unless --no-save is given, and optionally written to a JSON file.`,
	Example: `  cubesolver solve -s "WWWWWWWWWOOOOOOOOOGGGGGGGGGRRRRRRRRRBBBBBBBBBYYYYYYYYY"
  cubesolver solve -f scan.json -m ida --heuristic wrong_face
  cubesolver solve -s "..." -m twophase -o solution.json`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveState, "state", "s", "", "54-character cube state string")
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "JSON file containing the cube state")
	solveCmd.Flags().StringVarP(&solveMethod, "method", "m", "", "Solving method: bfs, ida, twophase (default from config)")
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", "", "IDA* heuristic: misplaced, wrong_face (default from config)")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "Write the solution to a JSON file")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "Do not store the solution in the database")
	solveCmd.MarkFlagsOneRequired("state", "file")
	solveCmd.MarkFlagsMutuallyExclusive("state", "file")
}

// stateFile is the JSON shape accepted by --file.
type stateFile struct {
	State string `json:"state"`
}

// solutionFile is the JSON shape written by --output.
type solutionFile struct {
	Moves          []string `json:"moves"`
	NumMoves       int      `json:"num_moves"`
	NodesExplored  int      `json:"nodes_explored"`
	SolutionString string   `json:"solution_string"`
}

func loadCubeFromFile(path string) (*cube.Cube, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var sf stateFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if sf.State == "" {
		return nil, fmt.Errorf("state file %s has no \"state\" key", path)
	}

	return cube.Parse(sf.State)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var c *cube.Cube
	if solveState != "" {
		c, err = cube.Parse(solveState)
	} else {
		c, err = loadCubeFromFile(solveFile)
	}
	if err != nil {
		return err
	}

	method := solveMethod
	if method == "" {
		method = cfg.Method
	}
	heuristic := solveHeuristic
	if heuristic == "" {
		heuristic = cfg.Heuristic
	}

	s, err := solver.Select(method, heuristic, cfg.TwoPhaseCommand, cfg.TwoPhaseFallback)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Solving with %s...\n", s.Name())
		fmt.Println(renderCube(c))
	}

	start := time.Now()
	moves, nodes, err := s.Solve(c)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Solution"))
	if len(moves) == 0 {
		fmt.Println("Cube already solved")
	} else {
		fmt.Println(moveStyle.Render(strings.Join(moves, " ")))
	}
	fmt.Println(statusStyle.Render(fmt.Sprintf("%d moves, %d nodes explored, %s", len(moves), nodes, elapsed.Round(time.Millisecond))))

	if solveOutput != "" {
		if err := writeSolutionFile(solveOutput, moves, nodes); err != nil {
			return err
		}
		fmt.Printf("Solution saved to %s\n", solveOutput)
	}

	if !solveNoSave {
		db, repo, err := openRepository(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		heuristicUsed := ""
		if method == "ida" {
			heuristicUsed = heuristic
		}
		id, err := repo.Create(c.String(), method, heuristicUsed, strings.Join(moves, " "),
			len(moves), nodes, elapsed.Milliseconds())
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("Stored solution %s\n", id)
		}
	}

	return nil
}

func writeSolutionFile(path string, moves []string, nodes int) error {
	sf := solutionFile{
		Moves:          moves,
		NumMoves:       len(moves),
		NodesExplored:  nodes,
		SolutionString: strings.Join(moves, " "),
	}
	if sf.SolutionString == "" {
		sf.SolutionString = "Cube already solved"
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode solution: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write solution: %w", err)
	}
	return nil
}
