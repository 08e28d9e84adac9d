package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneration(t *testing.T) {
	t.Parallel()

	g := NewGeneration(10)
	g.Mark(3)
	g.Mark(3)
	g.Mark(7)

	assert.Equal(t, 10, g.Len())
	assert.Equal(t, 2, g.Count())
	assert.Equal(t, []int{3, 7}, g.Indices())
	assert.True(t, g.Has(3))
	assert.False(t, g.Has(4))
	assert.False(t, g.Has(-1))
	assert.False(t, g.Has(10))

	g.Reset(4)
	assert.Equal(t, 4, g.Len())
	assert.Zero(t, g.Count())
	assert.Empty(t, g.Indices())

	g.Reset(20)
	assert.Equal(t, 20, g.Len())
	assert.False(t, g.Has(7))
}

func TestGenerationPool(t *testing.T) {
	t.Parallel()
	pool := NewGenerationPool()

	g := pool.Get(27)
	require.Equal(t, 27, g.Len())
	g.Mark(13)
	GenerationToPool(g, pool)

	again := pool.Get(27)
	assert.Equal(t, 27, again.Len())
	assert.Zero(t, again.Count(), "pooled generations come back cleared")
	assert.False(t, again.Has(13))

	// nil pool and nil generation are tolerated
	GenerationToPool(again, nil)
	GenerationToPool(nil, pool)
}

func TestTerminalRendererFrame(t *testing.T) {
	t.Parallel()
	l := newTestLattice(t, 2, 2, 2)
	require.NoError(t, l.SetAt(Coord{X: 0, Y: 1, Z: 0}, true))
	require.NoError(t, l.SetAt(Coord{X: 1, Y: 0, Z: 0}, true))
	require.NoError(t, l.SetAt(Coord{X: 1, Y: 0, Z: 1}, true))

	var out strings.Builder
	r := &TerminalRenderer{Out: &out}
	r.Display(l)

	// Top row is y=1; a full column shades darker than a single cell
	assert.Equal(t, "░░  \n  ▓▓\n", out.String())
}
