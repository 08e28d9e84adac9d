package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Pattern names a seed layout for a fresh lattice
type Pattern string

const (
	PatternGlider      Pattern = "glider"
	PatternTwinGliders Pattern = "twin-gliders"
	PatternRandom      Pattern = "random"
)

// gliderCells are the six live cells of the glider seed, relative to its origin
var gliderCells = []Coord{
	{X: 0, Y: 5, Z: 3},
	{X: 0, Y: 5, Z: 4},
	{X: 1, Y: 3, Z: 3},
	{X: 1, Y: 3, Z: 4},
	{X: 1, Y: 4, Z: 3},
	{X: 1, Y: 4, Z: 4},
}

// GliderCells returns the glider seed placed at origin
func GliderCells(origin Coord) []Coord {
	out := make([]Coord, len(gliderCells))
	for i, c := range gliderCells {
		out[i] = Coord{X: origin.X + c.X, Y: origin.Y + c.Y, Z: origin.Z + c.Z}
	}
	return out
}

// GliderOrigin is where the seed glider starts: the middle of the
// smallest extent along every axis
func (l *Lattice) GliderOrigin() Coord {
	half := min(l.width, l.height, l.depth) / 2
	return Coord{X: half, Y: half, Z: half}
}

// AddGlider adds the six-cell glider at origin
func (l *Lattice) AddGlider(origin Coord) error {
	for _, c := range GliderCells(origin) {
		if err := l.SetAt(c, true); err != nil {
			return errors.Wrap(err, "[AddGlider]")
		}
	}
	return nil
}

// AddMirroredGlider adds the glider reflected across the x axis of the lattice
func (l *Lattice) AddMirroredGlider(origin Coord) error {
	for _, c := range GliderCells(origin) {
		c.X = l.width - c.X - 1
		if err := l.SetAt(c, true); err != nil {
			return errors.Wrap(err, "[AddMirroredGlider]")
		}
	}
	return nil
}

// Randomize sets each cell alive with probability density
func (l *Lattice) Randomize(rng *rand.Rand, density float64) {
	for i := range len(l.cells) {
		_ = l.Set(i, rng.Float64() < density)
	}
}

// InjectRandomLife adds some random cells to break stagnation
func (l *Lattice) InjectRandomLife(rng *rand.Rand, count int) {
	for range count {
		_ = l.Set(rng.Intn(len(l.cells)), true)
	}
}

// ResetWithPattern clears the lattice and seeds it with p
func (l *Lattice) ResetWithPattern(p Pattern, rng *rand.Rand, density float64) error {
	l.Clear()

	origin := l.GliderOrigin()
	switch p {
	case PatternGlider:
		return l.AddGlider(origin)
	case PatternTwinGliders:
		if err := l.AddGlider(origin); err != nil {
			return err
		}
		return l.AddMirroredGlider(origin)
	case PatternRandom:
		l.Randomize(rng, density)
		return nil
	default:
		return errors.Errorf("[ResetWithPattern] unknown pattern %q", p)
	}
}
