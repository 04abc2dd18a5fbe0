package model

import (
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
)

const (
	aliveGlyph = " o "
	deadGlyph  = " _ "

	clearCmd = "clear"
)

// Frame renders the board row by row, one glyph per cell
func Frame(b *Board) string {
	var sb strings.Builder
	sb.Grow(b.size * (b.size*len(aliveGlyph) + 1))
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == Alive {
				sb.WriteString(aliveGlyph)
			} else {
				sb.WriteString(deadGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TerminalRenderer writes frames to a terminal
type TerminalRenderer struct {
	out         io.Writer
	clearScreen bool
}

func NewTerminalRenderer(out io.Writer, clearScreen bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, clearScreen: clearScreen}
}

// Display renders the board to the terminal
func (r *TerminalRenderer) Display(b *Board) {
	fmt.Fprint(r.out, Frame(b))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	if !r.clearScreen {
		return
	}

	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		log.Printf("[Clear] error clearing terminal: %v", err)
	}
}
