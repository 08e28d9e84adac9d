package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-gol3d/model"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation
type Config struct {
	Width               int           `json:"width" yaml:"width"`
	Height              int           `json:"height" yaml:"height"`
	Depth               int           `json:"depth" yaml:"depth"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	UseMemoryPool       bool          `json:"use_memory_pool" yaml:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"`
	Pattern             model.Pattern `json:"pattern" yaml:"pattern"`
	RandomDensity       float64       `json:"random_density" yaml:"random_density"`
	Seed                int64         `json:"seed" yaml:"seed"`
	InjectionCount      int           `json:"injection_count" yaml:"injection_count"`
	Headless            bool          `json:"headless" yaml:"headless"`
	WindowWidth         int           `json:"window_width" yaml:"window_width"`
	WindowHeight        int           `json:"window_height" yaml:"window_height"`
	PlotPath            string        `json:"plot_path" yaml:"plot_path"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               102,
		Height:              42,
		Depth:               42,
		FrameRate:           time.Second / 60,
		AutoRestart:         false,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		MaxGenerations:      0, // Run until interrupted
		Pattern:             model.PatternGlider,
		RandomDensity:       0.38,
		Seed:                1,
		InjectionCount:      3,
		Headless:            false,
		WindowWidth:         1280,
		WindowHeight:        720,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, picked by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] %+v", filename)
	}
	return config, nil
}

// Validate rejects configurations the simulation cannot run
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0 || c.Depth <= 0:
		return errors.Wrapf(ErrInvalidConfig, "lattice %dx%dx%d must be positive", c.Width, c.Height, c.Depth)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate %s is negative", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density %v not in [0, 1]", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations %d is negative", c.MaxGenerations)
	case c.StagnationThreshold < 0 || c.InjectionCount < 0:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold and injection_count must not be negative")
	}

	switch c.Pattern {
	case model.PatternGlider, model.PatternTwinGliders, model.PatternRandom:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown pattern %q", c.Pattern)
	}
	return nil
}
