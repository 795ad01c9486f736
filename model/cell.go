package model

// Cell holds a state and, once wired into a GraphGrid, the arena indices of
// its neighbors. The neighbor list is not validated by the cell itself.
type Cell struct {
	State     State
	neighbors []int
}

// NewCell creates an unwired cell with the given state
func NewCell(state State) Cell {
	return Cell{State: state}
}

// AddNeighbor appends an arena index to the neighbor list. There is no
// deduplication and no bound check; the wiring pass adds each neighbor once.
func (c *Cell) AddNeighbor(idx int) {
	c.neighbors = append(c.neighbors, idx)
}

// Neighbors returns the stored neighbor indices
func (c *Cell) Neighbors() []int {
	return c.neighbors
}

// Matrix builds a rows x cols cell matrix, asking fill for each initial state.
// A nil fill yields an all-dead matrix.
func Matrix(rows, cols int, fill func(row, col int) State) [][]Cell {
	cells := make([][]Cell, rows)
	for r := range rows {
		cells[r] = make([]Cell, cols)
		if fill == nil {
			continue
		}
		for c := range cols {
			cells[r][c].State = fill(r, c)
		}
	}
	return cells
}
