package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Aaryanmengi80/rubik-s-cube-solver/internal/cube"
)

// Styles shared across commands.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// faceletStyles colors each facelet symbol roughly like the sticker it
// represents.
var faceletStyles = map[byte]lipgloss.Style{
	'W': lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("255")),
	'O': lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
	'G': lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("40")),
	'R': lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("196")),
	'B': lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("21")),
	'Y': lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("226")),
}

func renderFacelet(b byte) string {
	if style, ok := faceletStyles[b]; ok {
		return style.Render(" " + string(b) + " ")
	}
	return " " + string(b) + " "
}

// renderCube draws the cube as an unfolded net: Up on top, then the
// Left-Front-Right-Back band, then Down.
func renderCube(c *cube.Cube) string {
	var sb strings.Builder
	indent := strings.Repeat(" ", 9)

	up := c.Face(cube.UpFace)
	for row := 0; row < 3; row++ {
		sb.WriteString(indent)
		for col := 0; col < 3; col++ {
			sb.WriteString(renderFacelet(up[row*3+col]))
		}
		sb.WriteString("\n")
	}

	band := []int{cube.LeftFace, cube.FrontFace, cube.RightFace, cube.BackFace}
	for row := 0; row < 3; row++ {
		for _, face := range band {
			block := c.Face(face)
			for col := 0; col < 3; col++ {
				sb.WriteString(renderFacelet(block[row*3+col]))
			}
		}
		sb.WriteString("\n")
	}

	down := c.Face(cube.DownFace)
	for row := 0; row < 3; row++ {
		sb.WriteString(indent)
		for col := 0; col < 3; col++ {
			sb.WriteString(renderFacelet(down[row*3+col]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
