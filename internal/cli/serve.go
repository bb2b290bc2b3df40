package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve the solver over HTTP.

Endpoints:
  POST /api/solve            solve a state, store the result
  GET  /api/solutions        list stored solutions
  GET  /api/solutions/latest most recent solution
  GET  /api/health           health check`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, falls back to :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	addr := serveAddr
	if addr == "" {
		addr = cfg.HTTPAddr
	}

	srv := httpapi.NewServer(addr, httpapi.New(repo, cfg))
	fmt.Printf("Listening on %s (database: %s)\n", addr, db.Path())
	return srv.ListenAndServe()
}
