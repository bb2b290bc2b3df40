// Package cli implements the command-line interface for the cube solver.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/config"
	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Rubik's Cube Solver",
	Long: `Rubik's Cube Solver - solve 3x3 cube states from the command line.

A cube state is a 54-character facelet string (W, O, G, R, B, Y) in face
order Up, Left, Front, Right, Back, Down, each face row-major. Solvers:
exhaustive BFS, heuristic IDA*, or an external two-phase solver.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesolver/cubesolver.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubesolver/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig loads the config file from --config or the default location.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
	}
	return config.Load(path)
}

// openRepository opens the database from --db, the config, or the default
// path, and migrates it.
func openRepository(cfg config.Config) (*storage.DB, *storage.SolutionRepository, error) {
	path := dbPath
	if path == "" {
		path = cfg.DBPath
	}

	var db *storage.DB
	var err error
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, nil, err
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, storage.NewSolutionRepository(db), nil
}
