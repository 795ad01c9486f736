package model

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var variants = []Variant{VariantValue, VariantGraph}

func newBoard(t *testing.T, v Variant, cells [][]Cell) Board {
	t.Helper()
	b, err := NewBoard(v, cells)
	require.NoError(t, err)
	return b
}

// frameOf builds a frame from rows of '@' and '.' glyphs
func frameOf(rows ...string) Frame {
	f := make(Frame, len(rows))
	for r, row := range rows {
		f[r] = make([]State, len(row))
		for c, ch := range row {
			f[r][c] = StateOf(ch == '@')
		}
	}
	return f
}

func cellsOf(f Frame) [][]Cell {
	cells := make([][]Cell, len(f))
	for r, row := range f {
		cells[r] = make([]Cell, len(row))
		for c, s := range row {
			cells[r][c] = NewCell(s)
		}
	}
	return cells
}

func TestNewBoardUnknownVariant(t *testing.T) {
	_, err := NewBoard(Variant("torus"), Empty(2, 2))
	assert.Error(t, err)
	assert.False(t, Variant("torus").Valid())
}

func TestBlinkerScenario(t *testing.T) {
	horizontal := frameOf(
		".....",
		".....",
		".@@@.",
		".....",
		".....",
	)
	vertical := frameOf(
		".....",
		"..@..",
		"..@..",
		"..@..",
		".....",
	)

	for _, v := range variants {
		t.Run(string(v), func(t *testing.T) {
			b := newBoard(t, v, cellsOf(horizontal))

			b.Step()
			if diff := cmp.Diff(vertical, Snapshot(b)); diff != "" {
				t.Fatalf("after step 1 (-want +got):\n%s", diff)
			}

			b.Step()
			if diff := cmp.Diff(horizontal, Snapshot(b)); diff != "" {
				t.Fatalf("after step 2 (-want +got):\n%s", diff)
			}
			assert.Equal(t, 2, b.Generation())
		})
	}
}

func TestBlockIsStillLife(t *testing.T) {
	block := frameOf(
		"....",
		".@@.",
		".@@.",
		"....",
	)

	for _, v := range variants {
		t.Run(string(v), func(t *testing.T) {
			b := newBoard(t, v, cellsOf(block))
			before := Fingerprint(b)
			for range 3 {
				b.Step()
			}
			assert.Equal(t, before, Fingerprint(b))
			if diff := cmp.Diff(block, Snapshot(b)); diff != "" {
				t.Fatalf("block changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSingleCellGrid(t *testing.T) {
	for _, v := range variants {
		t.Run(string(v), func(t *testing.T) {
			dead := newBoard(t, v, cellsOf(frameOf(".")))
			assert.Empty(t, dead.Neighbors(0, 0))
			for range 5 {
				dead.Step()
				assert.Equal(t, Dead, dead.State(0, 0))
			}

			alive := newBoard(t, v, cellsOf(frameOf("@")))
			alive.Step()
			assert.Equal(t, Dead, alive.State(0, 0))
		})
	}
}

func TestNeighborCounts(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     int
	}{
		{"top left corner", 0, 0, 3},
		{"bottom right corner", 3, 4, 3},
		{"top edge", 0, 2, 5},
		{"left edge", 2, 0, 5},
		{"interior", 1, 1, 8},
		{"interior far", 2, 3, 8},
	}

	for _, v := range variants {
		b := newBoard(t, v, Empty(4, 5))
		for _, tt := range tests {
			t.Run(string(v)+"/"+tt.name, func(t *testing.T) {
				assert.Len(t, b.Neighbors(tt.row, tt.col), tt.want)
			})
		}
	}
}

func TestNeighborsNeverWrap(t *testing.T) {
	// A 2x2 grid: every cell sees exactly the other three
	for _, v := range variants {
		b := newBoard(t, v, Empty(2, 2))
		assert.ElementsMatch(t, []Pos{{0, 1}, {1, 0}, {1, 1}}, b.Neighbors(0, 0), v)
		assert.ElementsMatch(t, []Pos{{0, 0}, {0, 1}, {1, 0}}, b.Neighbors(1, 1), v)
	}

	// A single row only has horizontal neighbors
	for _, v := range variants {
		b := newBoard(t, v, Empty(1, 3))
		assert.Equal(t, []Pos{{0, 1}}, b.Neighbors(0, 0), v)
		assert.Equal(t, []Pos{{0, 0}, {0, 2}}, b.Neighbors(0, 1), v)
	}
}

func TestVariantsAgreeOnNeighbors(t *testing.T) {
	shapes := map[string]Frame{
		"square":    Snapshot(NewValueGrid(Empty(6, 6))),
		"wide":      Snapshot(NewValueGrid(Empty(2, 9))),
		"irregular": frameOf("@.@", "@", "..@@", "", "@@"),
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			value := newBoard(t, VariantValue, cellsOf(shape))
			graph := newBoard(t, VariantGraph, cellsOf(shape))

			for r := range shape.Rows() {
				for c := range shape.RowLen(r) {
					want := value.Neighbors(r, c)
					got := graph.Neighbors(r, c)
					assert.Equal(t, want, got, "neighbors of (%d, %d)", r, c)
					assert.LessOrEqual(t, len(got), 8)
					assert.Equal(t, value.AliveNeighbors(r, c), graph.AliveNeighbors(r, c))
				}
			}
		})
	}
}

func TestIrregularNeighbors(t *testing.T) {
	b := NewValueGrid(cellsOf(frameOf("...", ".", "....")))
	assert.Equal(t, []Pos{{0, 0}, {0, 1}, {2, 0}, {2, 1}}, b.Neighbors(1, 0))
	assert.Equal(t, []Pos{{1, 0}, {2, 1}}, b.Neighbors(2, 0))
}

func TestIrregularStepKeepsShape(t *testing.T) {
	shape := frameOf("@@@", "@", "@@@@", "", "@.")

	for _, v := range variants {
		t.Run(string(v), func(t *testing.T) {
			b := newBoard(t, v, cellsOf(shape))
			require.NotPanics(t, b.Step)
			require.Equal(t, len(shape), b.Rows())
			for r := range shape {
				assert.Equal(t, len(shape[r]), b.RowLen(r))
			}
		})
	}
}

func TestStepFollowsRulesFromCurrentGeneration(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, v := range variants {
		t.Run(string(v), func(t *testing.T) {
			for trial := range 20 {
				rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
				cells := Matrix(rows, cols, func(int, int) State {
					return StateOf(rng.Intn(3) == 0)
				})
				b := newBoard(t, v, cells)

				before := Snapshot(b)
				counts := make([][]int, rows)
				for r := range rows {
					counts[r] = make([]int, cols)
					for c := range cols {
						counts[r][c] = b.AliveNeighbors(r, c)
					}
				}

				b.Step()

				for r := range rows {
					for c := range cols {
						n := counts[r][c]
						require.True(t, n >= 0 && n <= 8)
						want := Dead
						if before[r][c] == Alive && (n == 2 || n == 3) {
							want = Alive
						}
						if before[r][c] == Dead && n == 3 {
							want = Alive
						}
						require.Equal(t, want, b.State(r, c), "trial %d cell (%d, %d) with %d neighbors", trial, r, c, n)
					}
				}
			}
		})
	}
}

func TestVariantsAgreeOverGenerations(t *testing.T) {
	cells := func() [][]Cell {
		rng := rand.New(rand.NewSource(7))
		return Matrix(12, 10, func(int, int) State { return StateOf(rng.Intn(2) == 0) })
	}
	value := newBoard(t, VariantValue, cells())
	graph := newBoard(t, VariantGraph, cells())

	for gen := range 15 {
		if diff := cmp.Diff(Snapshot(value), Snapshot(graph)); diff != "" {
			t.Fatalf("generation %d diverged (-value +graph):\n%s", gen, diff)
		}
		value.Step()
		graph.Step()
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	for _, v := range variants {
		t.Run(string(v), func(t *testing.T) {
			b := newBoard(t, v, cellsOf(frameOf("...", ".")))
			assert.Panics(t, func() { b.State(-1, 0) })
			assert.Panics(t, func() { b.State(0, 3) })
			assert.Panics(t, func() { b.State(1, 1) })
			assert.Panics(t, func() { b.Set(2, 0, Alive) })
			assert.Panics(t, func() { b.Neighbors(0, -1) })
			assert.Panics(t, func() { b.AliveNeighbors(5, 5) })
		})
	}
}

func TestSetSeedsPattern(t *testing.T) {
	for _, v := range variants {
		t.Run(string(v), func(t *testing.T) {
			b := newBoard(t, v, Empty(5, 5))
			for _, c := range []int{1, 2, 3} {
				b.Set(2, c, Alive)
			}
			assert.Equal(t, 3, Population(b))
			assert.Equal(t, 2, b.AliveNeighbors(2, 2))
			assert.Equal(t, 3, b.AliveNeighbors(1, 2))

			b.Step()
			assert.Equal(t, Alive, b.State(1, 2))
			assert.Equal(t, Dead, b.State(2, 1))
		})
	}
}

func TestFingerprintDistinguishesShape(t *testing.T) {
	assert.NotEqual(t, Fingerprint(frameOf("..", "..")), Fingerprint(frameOf("...", ".")))
	assert.NotEqual(t, Fingerprint(frameOf("@.")), Fingerprint(frameOf(".@")))
	assert.Equal(t, Fingerprint(frameOf("@.", ".@")), Fingerprint(frameOf("@.", ".@")))
}
