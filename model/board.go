package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Pos is a (row, col) coordinate on a board
type Pos struct {
	Row, Col int
}

// View is read-only access to cell states, as consumed by renderers
type View interface {
	Rows() int
	RowLen(row int) int
	State(row, col int) State
}

// Board is the contract shared by both grid variants
type Board interface {
	View
	Set(row, col int, s State)
	Neighbors(row, col int) []Pos
	AliveNeighbors(row, col int) int
	Step()
	Generation() int
}

// Variant selects how neighbor relationships are represented
type Variant string

const (
	// VariantValue computes neighbors geometrically on every query
	VariantValue Variant = "value"
	// VariantGraph precomputes neighbor indices once in a wiring pass
	VariantGraph Variant = "graph"
)

// Valid reports whether v names a known variant
func (v Variant) Valid() bool {
	return v == VariantValue || v == VariantGraph
}

// NewBoard builds a board of the requested variant from a pre-built matrix.
// Graph boards come back fully wired.
func NewBoard(v Variant, cells [][]Cell) (Board, error) {
	switch v {
	case VariantValue:
		return NewValueGrid(cells), nil
	case VariantGraph:
		g := NewGraphGrid(cells)
		g.WireAll()
		return g, nil
	default:
		return nil, errors.Errorf("[NewBoard] unknown variant: %q", v)
	}
}

// forEachAdjacent visits the in-bounds 8-adjacent positions of (row, col) in
// row-major offset order. Out-of-bounds candidates are dropped, never wrapped.
func forEachAdjacent(rows int, rowLen func(int) int, row, col int, visit func(nr, nc int)) {
	for dr := -1; dr <= 1; dr++ {
		nr := row + dr
		if nr < 0 || nr >= rows {
			continue
		}
		width := rowLen(nr)
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nc := col + dc
			if nc < 0 || nc >= width {
				continue
			}
			visit(nr, nc)
		}
	}
}

func outOfBounds(row, col int) string {
	return fmt.Sprintf("model: cell (%d, %d) out of bounds", row, col)
}

// Frame is a detached copy of a board's states
type Frame [][]State

// Rows returns the number of rows
func (f Frame) Rows() int { return len(f) }

// RowLen returns the length of the given row
func (f Frame) RowLen(row int) int { return len(f[row]) }

// State returns the state at (row, col)
func (f Frame) State(row, col int) State { return f[row][col] }

// Population returns the number of alive cells
func Population(b View) (count int) {
	for r := range b.Rows() {
		for c := range b.RowLen(r) {
			if b.State(r, c).IsAlive() {
				count++
			}
		}
	}
	return
}

// Snapshot copies the current states into a frame shaped like the board
func Snapshot(b View) Frame {
	out := make(Frame, b.Rows())
	for r := range out {
		out[r] = make([]State, b.RowLen(r))
		for c := range out[r] {
			out[r][c] = b.State(r, c)
		}
	}
	return out
}

// Fingerprint returns an MD5 hash of the board's shape and states
func Fingerprint(b View) string {
	h := md5.New()
	for r := range b.Rows() {
		// Row terminator keeps differently shaped boards apart
		for c := range b.RowLen(r) {
			h.Write([]byte{byte(b.State(r, c))})
		}
		h.Write([]byte{0xff})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
