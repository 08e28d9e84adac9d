package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol3d/model"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	c := DefaultConfig()

	require.NoError(t, c.Validate())
	assert.Equal(t, 102, c.Width)
	assert.Equal(t, 42, c.Height)
	assert.Equal(t, 42, c.Depth)
	assert.Equal(t, model.PatternGlider, c.Pattern)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("json overrides defaults", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "config.json", `{
			"width": 42,
			"frame_rate": 50000000,
			"pattern": "twin-gliders",
			"headless": true
		}`)

		c, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 42, c.Width)
		assert.Equal(t, 42, c.Height, "unset fields keep defaults")
		assert.Equal(t, 50*time.Millisecond, c.FrameRate)
		assert.Equal(t, model.PatternTwinGliders, c.Pattern)
		assert.True(t, c.Headless)
	})

	t.Run("yaml by extension", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "config.yaml", `
width: 30
height: 20
depth: 10
frame_rate: 100ms
pattern: random
random_density: 0.2
seed: 99
plot_path: out/population.png
`)

		c, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 30, c.Width)
		assert.Equal(t, 20, c.Height)
		assert.Equal(t, 10, c.Depth)
		assert.Equal(t, 100*time.Millisecond, c.FrameRate)
		assert.Equal(t, model.PatternRandom, c.Pattern)
		assert.InDelta(t, 0.2, c.RandomDensity, 1e-9)
		assert.Equal(t, int64(99), c.Seed)
		assert.Equal(t, "out/population.png", c.PlotPath)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig(writeFile(t, "bad.json", `{"width": `))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig(writeFile(t, "zero.yml", "depth: 0\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*Config){
		"negative width":       func(c *Config) { c.Width = -1 },
		"zero height":          func(c *Config) { c.Height = 0 },
		"negative frame rate":  func(c *Config) { c.FrameRate = -time.Second },
		"density above one":    func(c *Config) { c.RandomDensity = 1.5 },
		"negative generations": func(c *Config) { c.MaxGenerations = -1 },
		"negative injection":   func(c *Config) { c.InjectionCount = -2 },
		"unknown pattern":      func(c *Config) { c.Pattern = "acorn" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := DefaultConfig()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
