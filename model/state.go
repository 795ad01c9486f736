package model

// State is the two-valued state of a cell
type State uint8

const (
	Dead State = iota
	Alive
)

// IsAlive reports whether the state is Alive
func (s State) IsAlive() bool {
	return s == Alive
}

// StateOf converts a boolean liveness into a State
func StateOf(alive bool) State {
	if alive {
		return Alive
	}
	return Dead
}
