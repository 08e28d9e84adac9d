package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// shades from a single live cell in a column up to a dense column
var gridPosShades = []string{"░░", "▒▒", "▓▓", "██"}

// TerminalRenderer draws the lattice projected onto the XY plane.
// Each character cell shades by how many cells are alive along z.
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the lattice to the terminal
func (r *TerminalRenderer) Display(l *Lattice) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprint(out, r.Frame(l))
}

// Frame builds the projection as text, top row first
func (r *TerminalRenderer) Frame(l *Lattice) string {
	var b strings.Builder
	for y := l.height - 1; y >= 0; y-- {
		for x := range l.width {
			column := 0
			for z := range l.depth {
				if l.cells[l.IndexOf(x, y, z)] {
					column++
				}
			}
			b.WriteString(shadeFor(column, l.depth))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func shadeFor(column, depth int) string {
	if column == 0 {
		return gridPosEmpty
	}
	i := (column - 1) * len(gridPosShades) / depth
	return gridPosShades[min(i, len(gridPosShades)-1)]
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
