package model

import "github.com/sheikhrachel/go-lifegrid/rules"

// GraphGrid keeps every cell in one flat arena. Each cell owns a precomputed
// list of arena indices for its neighbors, filled in by the wiring pass.
type GraphGrid struct {
	cells    []Cell
	rowStart []int
	widths   []int
	pos      []Pos // arena index -> coordinate
	next     []State

	generation int
	stepping   bool
}

// NewGraphGrid flattens a pre-built cell matrix into the arena. Cells are not
// wired; call Wire for every cell, or WireAll, before the first Step.
func NewGraphGrid(cells [][]Cell) *GraphGrid {
	g := &GraphGrid{
		rowStart: make([]int, len(cells)),
		widths:   make([]int, len(cells)),
	}
	for r, row := range cells {
		g.rowStart[r] = len(g.cells)
		g.widths[r] = len(row)
		for c, cell := range row {
			g.cells = append(g.cells, cell)
			g.pos = append(g.pos, Pos{Row: r, Col: c})
		}
	}
	g.next = make([]State, len(g.cells))
	return g
}

// Rows returns the number of rows
func (g *GraphGrid) Rows() int {
	return len(g.widths)
}

// RowLen returns the length of the given row
func (g *GraphGrid) RowLen(row int) int {
	return g.widths[row]
}

// Generation returns the number of completed steps
func (g *GraphGrid) Generation() int {
	return g.generation
}

// Index maps a coordinate to its arena index; out-of-bounds coordinates panic
func (g *GraphGrid) Index(row, col int) int {
	if row < 0 || row >= len(g.widths) || col < 0 || col >= g.widths[row] {
		panic(outOfBounds(row, col))
	}
	return g.rowStart[row] + col
}

// Cell exposes the arena cell at (row, col)
func (g *GraphGrid) Cell(row, col int) *Cell {
	return &g.cells[g.Index(row, col)]
}

func (g *GraphGrid) mustNotStep(op string) {
	if g.stepping {
		panic("model: " + op + " while a step is in progress")
	}
}

// Wire runs the wiring pass for one cell, appending the arena index of every
// in-bounds 8-adjacent cell. Wiring the same cell twice duplicates neighbors.
func (g *GraphGrid) Wire(row, col int) {
	g.mustNotStep("wire")
	cell := g.Cell(row, col)
	forEachAdjacent(len(g.widths), g.RowLen, row, col, func(nr, nc int) {
		cell.AddNeighbor(g.rowStart[nr] + nc)
	})
}

// WireAll runs the wiring pass for every cell
func (g *GraphGrid) WireAll() {
	for r, width := range g.widths {
		for c := range width {
			g.Wire(r, c)
		}
	}
}

// State returns the state of a cell; out-of-bounds coordinates panic
func (g *GraphGrid) State(row, col int) State {
	return g.cells[g.Index(row, col)].State
}

// Set overwrites the state of a cell. Out-of-bounds coordinates and writes
// issued during a step panic.
func (g *GraphGrid) Set(row, col int, s State) {
	g.mustNotStep("set")
	g.cells[g.Index(row, col)].State = s
}

// Neighbors returns the stored neighbor list of (row, col) as coordinates
func (g *GraphGrid) Neighbors(row, col int) []Pos {
	idx := g.cells[g.Index(row, col)].Neighbors()
	out := make([]Pos, len(idx))
	for i, n := range idx {
		out[i] = g.pos[n]
	}
	return out
}

// AliveNeighbors counts stored neighbors whose current state is Alive
func (g *GraphGrid) AliveNeighbors(row, col int) int {
	return g.aliveAround(g.Index(row, col))
}

func (g *GraphGrid) aliveAround(i int) (count int) {
	for _, n := range g.cells[i].neighbors {
		if g.cells[n].State.IsAlive() {
			count++
		}
	}
	return
}

// Step advances one generation using the precomputed neighbor lists. Unwired
// cells see zero alive neighbors.
func (g *GraphGrid) Step() {
	g.mustNotStep("step")
	g.stepping = true
	defer func() { g.stepping = false }()

	for i := range g.cells {
		g.next[i] = StateOf(rules.ApplyConwayRules(g.aliveAround(i), g.cells[i].State.IsAlive()))
	}

	for i := range g.cells {
		g.cells[i].State, g.next[i] = g.next[i], g.cells[i].State
	}

	g.generation++
}
