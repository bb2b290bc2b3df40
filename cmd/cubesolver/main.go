// Rubik's Cube Solver - CLI for solving, scrambling, and replaying 3x3 cube states.
package main

import (
	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cli"
)

func main() {
	cli.Execute()
}
