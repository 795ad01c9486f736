package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	glyphAlive = '@'
	glyphDead  = '.'

	macosClearCmd = "clear"
)

// Glyph maps a state to its display character
func Glyph(s State) rune {
	if s.IsAlive() {
		return glyphAlive
	}
	return glyphDead
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Render writes one space-padded glyph per cell and a newline per row
func (r *TerminalRenderer) Render(w io.Writer, b View) error {
	bw := bufio.NewWriter(w)
	for row := range b.Rows() {
		for col := range b.RowLen(row) {
			if _, err := fmt.Fprintf(bw, " %c ", Glyph(b.State(row, col))); err != nil {
				return errors.Wrap(err, "[Render] failed to write cell")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "[Render] failed to write row")
		}
	}
	return errors.Wrap(bw.Flush(), "[Render] failed to flush")
}

// Display renders the board to stdout
func (r *TerminalRenderer) Display(b View) error {
	return r.Render(os.Stdout, b)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
