package model

import "github.com/sheikhrachel/go-lifegrid/rules"

// ValueGrid stores cells by value and resolves neighbors geometrically on
// every query
type ValueGrid struct {
	cells      [][]Cell
	generation int
	pool       *StagePool
}

// NewValueGrid takes ownership of a pre-built cell matrix. Rows may differ in
// length.
func NewValueGrid(cells [][]Cell) *ValueGrid {
	return &ValueGrid{
		cells: cells,
		pool:  defaultStagePool,
	}
}

// UseStagePool replaces the staging pool; nil allocates a fresh stage per step
func (g *ValueGrid) UseStagePool(pool *StagePool) {
	g.pool = pool
}

// Rows returns the number of rows
func (g *ValueGrid) Rows() int {
	return len(g.cells)
}

// RowLen returns the length of the given row
func (g *ValueGrid) RowLen(row int) int {
	return len(g.cells[row])
}

// Generation returns the number of completed steps
func (g *ValueGrid) Generation() int {
	return g.generation
}

func (g *ValueGrid) inBounds(row, col int) bool {
	return row >= 0 && row < len(g.cells) && col >= 0 && col < len(g.cells[row])
}

// State returns the state of a cell; out-of-bounds coordinates panic
func (g *ValueGrid) State(row, col int) State {
	if !g.inBounds(row, col) {
		panic(outOfBounds(row, col))
	}
	return g.cells[row][col].State
}

// Set overwrites the state of a cell; out-of-bounds coordinates panic
func (g *ValueGrid) Set(row, col int, s State) {
	if !g.inBounds(row, col) {
		panic(outOfBounds(row, col))
	}
	g.cells[row][col].State = s
}

// Neighbors computes the in-bounds 8-adjacent positions of (row, col)
func (g *ValueGrid) Neighbors(row, col int) []Pos {
	if !g.inBounds(row, col) {
		panic(outOfBounds(row, col))
	}
	out := make([]Pos, 0, rules.MaxNeighbors)
	forEachAdjacent(len(g.cells), g.RowLen, row, col, func(nr, nc int) {
		out = append(out, Pos{Row: nr, Col: nc})
	})
	return out
}

// AliveNeighbors counts neighbors whose current state is Alive
func (g *ValueGrid) AliveNeighbors(row, col int) (count int) {
	if !g.inBounds(row, col) {
		panic(outOfBounds(row, col))
	}
	forEachAdjacent(len(g.cells), g.RowLen, row, col, func(nr, nc int) {
		if g.cells[nr][nc].State.IsAlive() {
			count++
		}
	})
	return
}

// Step advances one generation. Next states are staged first, reading only
// current states, then swapped into the cells.
func (g *ValueGrid) Step() {
	var stage *Stage
	if g.pool != nil {
		stage = g.pool.Get(len(g.cells), g.RowLen)
	} else {
		stage = &Stage{}
		stage.Reset(len(g.cells), g.RowLen)
	}

	for r, row := range g.cells {
		for c := range row {
			alive := rules.ApplyConwayRules(g.AliveNeighbors(r, c), row[c].State.IsAlive())
			stage.rows[r][c] = StateOf(alive)
		}
	}

	for r, row := range g.cells {
		staged := stage.rows[r]
		for c := range row {
			row[c].State, staged[c] = staged[c], row[c].State
		}
	}

	StageToPool(stage, g.pool)
	g.generation++
}
