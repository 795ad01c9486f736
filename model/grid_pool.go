package model

import "sync"

// Stage holds staged next-generation states shaped like the grid it serves
type Stage struct {
	rows [][]State
}

// Reset resizes the stage so row r has exactly rowLen(r) entries
func (s *Stage) Reset(rows int, rowLen func(int) int) {
	if cap(s.rows) < rows {
		s.rows = make([][]State, rows)
	}
	s.rows = s.rows[:rows]
	for r := range s.rows {
		width := rowLen(r)
		if cap(s.rows[r]) < width {
			s.rows[r] = make([]State, width)
		}
		s.rows[r] = s.rows[r][:width]
	}
}

// StagePool recycles staging buffers between generations
type StagePool struct {
	pool sync.Pool
}

func NewStagePool() *StagePool {
	return &StagePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Stage{}
			},
		},
	}
}

var defaultStagePool = NewStagePool()

// Get retrieves a stage from the pool, resized to the given shape
func (p *StagePool) Get(rows int, rowLen func(int) int) *Stage {
	s := p.pool.Get().(*Stage)
	s.Reset(rows, rowLen)
	return s
}

// Put returns a stage to the pool
func (p *StagePool) Put(s *Stage) {
	p.pool.Put(s)
}

// StageToPool returns a stage to the pool, tolerating a nil pool
func StageToPool(s *Stage, pool *StagePool) {
	if pool == nil {
		return
	}

	pool.Put(s)
}
