package model

import "sync"

// Generation is a snapshot of which cells are alive in the next step
type Generation struct {
	alive []bool
	count int
}

// NewGeneration creates an empty generation for a lattice of size cells
func NewGeneration(size int) *Generation {
	return &Generation{alive: make([]bool, size)}
}

// Reset resizes the generation and clears every mark
func (g *Generation) Reset(size int) {
	if cap(g.alive) < size {
		g.alive = make([]bool, size)
	} else {
		g.alive = g.alive[:size]
		clear(g.alive)
	}
	g.count = 0
}

// Mark flags index as alive
func (g *Generation) Mark(index int) {
	if !g.alive[index] {
		g.alive[index] = true
		g.count++
	}
}

// Has reports whether index is alive
func (g *Generation) Has(index int) bool {
	return index >= 0 && index < len(g.alive) && g.alive[index]
}

// Len returns the number of cells covered
func (g *Generation) Len() int {
	return len(g.alive)
}

// Count returns the number of marked cells
func (g *Generation) Count() int {
	return g.count
}

// Indices returns the marked indices in ascending order
func (g *Generation) Indices() []int {
	out := make([]int, 0, g.count)
	for i, alive := range g.alive {
		if alive {
			out = append(out, i)
		}
	}
	return out
}

// GenerationToPool returns a generation to the pool for reuse
func GenerationToPool(g *Generation, pool *GenerationPool) {
	if pool == nil || g == nil {
		return
	}

	pool.Put(g)
}

// GenerationPool recycles generation buffers between steps
type GenerationPool struct {
	pool sync.Pool
}

func NewGenerationPool() *GenerationPool {
	return &GenerationPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Generation{}
			},
		},
	}
}

// Get retrieves a cleared generation sized for size cells
func (p *GenerationPool) Get(size int) *Generation {
	g := p.pool.Get().(*Generation)
	g.Reset(size)
	return g
}

// Put returns a generation to the pool
func (p *GenerationPool) Put(g *Generation) {
	p.pool.Put(g)
}
