package rules

import "fmt"

// MaxNeighbors is the size of the 8-connected neighborhood
const MaxNeighbors = 8

// Rule is an outer-totalistic life-like rule: whether a cell is alive in the
// next generation depends only on its own state and its alive neighbor count.
type Rule struct {
	Birth   [MaxNeighbors + 1]bool
	Survive [MaxNeighbors + 1]bool
}

// Conway is the B3/S23 rule
var Conway = Rule{
	Birth:   [MaxNeighbors + 1]bool{3: true},
	Survive: [MaxNeighbors + 1]bool{2: true, 3: true},
}

// Next returns whether a cell with the given state and alive neighbor count is
// alive in the next generation. A count outside [0, 8] cannot come from a valid
// grid and panics.
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > MaxNeighbors {
		panic(fmt.Sprintf("rules: neighbor count %d out of range [0, %d]", neighbors, MaxNeighbors))
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Alive with 2 or 3 alive neighbors stays alive, dead with exactly 3 becomes alive,
everything else is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Conway.Next(alive, neighbors)
}
