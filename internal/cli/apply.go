package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
)

var applyState string

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply a move sequence to a cube state",
	Long: `Apply a sequence of moves to a cube state and print the result.

Moves use standard notation (U, U', U2, D, R, F2, ...). Without --state
the sequence is applied to a solved cube, which makes this a scramble
preview.`,
	Example: `  cubesolver apply "U R U' R'"
  cubesolver apply -s "WWWWWWWWW..." U2 F`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyState, "state", "s", "", "54-character cube state to start from (default: solved)")
}

func runApply(cmd *cobra.Command, args []string) error {
	c := cube.New()
	if applyState != "" {
		var err error
		c, err = cube.Parse(applyState)
		if err != nil {
			return err
		}
	}

	mc := cube.NewMoveCommand(c)
	if err := mc.ExecuteSequence(strings.Join(args, " ")); err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Applied " + mc.SolutionString()))
	fmt.Println(renderCube(c))
	fmt.Println(c.String())
	if c.IsSolved() {
		fmt.Println(statusStyle.Render("Cube is solved"))
	}
	return nil
}
