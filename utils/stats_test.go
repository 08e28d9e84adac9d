package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsUpdate(t *testing.T) {
	t.Parallel()
	s := NewStats()

	s.Update(0, 100, 0)
	assert.InDelta(t, 100, s.AveragePopulation, 1e-9)
	assert.Zero(t, s.GenerationsPerSecond)

	s.Update(1, 200, 100*time.Millisecond)
	assert.InDelta(t, 110, s.AveragePopulation, 1e-9)
	assert.InDelta(t, 10, s.GenerationsPerSecond, 1e-9)
	assert.Equal(t, 1, s.TotalGenerations)

	s.RecordTransitions(3, 4)
	s.RecordTransitions(1, 0)
	assert.Equal(t, 4, s.TotalBirths)
	assert.Equal(t, 4, s.TotalDeaths)

	assert.Equal(t, []PopulationSample{
		{Generation: 0, Population: 100},
		{Generation: 1, Population: 200},
	}, s.History)
}

func TestSavePopulationPlot(t *testing.T) {
	t.Parallel()

	t.Run("writes an image", func(t *testing.T) {
		t.Parallel()
		s := NewStats()
		for gen, pop := range []int{6, 8, 12, 12, 10} {
			s.Update(gen, pop, time.Millisecond)
		}

		path := filepath.Join(t.TempDir(), "plots", "population.png")
		require.NoError(t, SavePopulationPlot(s, path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})

	t.Run("refuses an empty history", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, SavePopulationPlot(NewStats(), filepath.Join(t.TempDir(), "empty.png")))
	})
}
