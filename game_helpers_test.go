package main

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol3d/model"
	"github.com/sheikhrachel/go-gol3d/utils"
)

func testConfig() utils.Config {
	c := utils.DefaultConfig()
	c.Width, c.Height, c.Depth = 8, 8, 8
	c.Pattern = model.PatternRandom
	c.FrameRate = 0
	c.Headless = true
	return c
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestInitializeGame(t *testing.T) {
	t.Parallel()

	t.Run("seeds the glider", func(t *testing.T) {
		t.Parallel()
		g, err := initializeGame(utils.DefaultConfig(), discardLogger())
		require.NoError(t, err)
		assert.Equal(t, 6, g.lattice.CountAlive())
		assert.Zero(t, g.driver.Generation())
	})

	t.Run("rejects a lattice too small for the glider", func(t *testing.T) {
		t.Parallel()
		c := testConfig()
		c.Pattern = model.PatternGlider
		_, err := initializeGame(c, discardLogger())
		assert.ErrorIs(t, err, model.ErrCoordOutOfRange)
	})

	t.Run("rejects bad dimensions", func(t *testing.T) {
		t.Parallel()
		c := testConfig()
		c.Depth = 0
		_, err := initializeGame(c, discardLogger())
		assert.ErrorIs(t, err, model.ErrInvalidDimensions)
	})
}

func TestCheckRestartConditions(t *testing.T) {
	t.Parallel()
	c := utils.DefaultConfig()

	restart, reason := checkRestartConditions(0, 0, c)
	assert.True(t, restart)
	assert.Equal(t, "extinction", reason)

	restart, reason = checkRestartConditions(10, c.StagnationThreshold, c)
	assert.True(t, restart)
	assert.Equal(t, "stagnation detected", reason)

	restart, _ = checkRestartConditions(10, c.StagnationThreshold-1, c)
	assert.False(t, restart)

	c.StagnationThreshold = 0
	restart, _ = checkRestartConditions(10, 100, c)
	assert.False(t, restart)
}

func TestUpdateGameStateDetectsStagnation(t *testing.T) {
	t.Parallel()
	c := testConfig()
	c.RandomDensity = 0
	g, err := initializeGame(c, discardLogger())
	require.NoError(t, err)

	var statuses []string
	for range 4 {
		_, _, status, _ := updateGameState(g, g.stats.StartTime)
		statuses = append(statuses, status)
	}
	assert.Equal(t, []string{"Extinct", "Extinct", "Extinct", "Extinct"}, statuses)

	require.NoError(t, g.lattice.Set(0, true))
	living, density, status, stagnant := updateGameState(g, g.stats.StartTime)
	assert.Equal(t, 1, living)
	assert.InDelta(t, 100.0/512, density, 1e-9)
	assert.Equal(t, "Active", status)
	assert.False(t, stagnant)

	_, _, status, stagnant = updateGameState(g, g.stats.StartTime)
	assert.Equal(t, "Stagnant", status)
	assert.True(t, stagnant)
}

func TestRestartGameKeepsGenerationCount(t *testing.T) {
	t.Parallel()
	g, err := initializeGame(utils.DefaultConfig(), discardLogger())
	require.NoError(t, err)

	_, err = g.driver.Step()
	require.NoError(t, err)
	require.NoError(t, restartGame(g, utils.DefaultConfig(), discardLogger()))

	assert.Equal(t, 1, g.driver.Generation())
	assert.Equal(t, 6, g.lattice.CountAlive())
}

func TestRunFramesStopsAtLimit(t *testing.T) {
	c := testConfig()
	c.MaxGenerations = 3

	g, err := initializeGame(c, discardLogger())
	require.NoError(t, err)

	var out strings.Builder
	err = runFrames(context.Background(), g, c, discardLogger(), &model.TerminalRenderer{Out: &out})
	require.NoError(t, err)

	assert.Equal(t, 3, g.driver.Generation())
	assert.Len(t, g.stats.History, 4)
	assert.Contains(t, out.String(), "\n")
}

func TestRunFramesHonorsCancel(t *testing.T) {
	c := testConfig()

	g, err := initializeGame(c, discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = runFrames(ctx, g, c, discardLogger(), &model.TerminalRenderer{Out: io.Discard})
	require.NoError(t, err)
	assert.Zero(t, g.driver.Generation())
}
