package model

import "github.com/pkg/errors"

// Pattern builds an initial cell matrix of the given size
type Pattern func(rows, cols int) [][]Cell

// Empty returns an all-dead matrix
func Empty(rows, cols int) [][]Cell {
	return Matrix(rows, cols, nil)
}

// Blinker places a horizontal 3-cell line through the centre of the grid
func Blinker(rows, cols int) [][]Cell {
	cells := Empty(rows, cols)
	r, c := rows/2, cols/2
	for _, col := range []int{c - 1, c, c + 1} {
		if r < rows && col >= 0 && col < cols {
			cells[r][col].State = Alive
		}
	}
	return cells
}

// Block places a 2x2 still life at the centre of the grid
func Block(rows, cols int) [][]Cell {
	cells := Empty(rows, cols)
	r, c := rows/2-1, cols/2-1
	for y := r; y <= r+1; y++ {
		for x := c; x <= c+1; x++ {
			if y >= 0 && y < rows && x >= 0 && x < cols {
				cells[y][x].State = Alive
			}
		}
	}
	return cells
}

// Stripes makes every even column alive
func Stripes(rows, cols int) [][]Cell {
	return Matrix(rows, cols, func(_, col int) State {
		return StateOf(col%2 == 0)
	})
}

var patterns = map[string]Pattern{
	"empty":   Empty,
	"blinker": Blinker,
	"block":   Block,
	"stripes": Stripes,
}

// PatternByName resolves a seed pattern from its configuration name
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Errorf("[PatternByName] unknown pattern: %q", name)
	}
	return p, nil
}
