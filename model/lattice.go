package model

import (
	"iter"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	ErrInvalidDimensions = errors.New("lattice dimensions must be positive")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrCoordOutOfRange   = errors.New("coordinate out of range")
)

// Coord is a cell position inside the lattice
type Coord struct {
	X, Y, Z int
}

// Transition is emitted whenever a cell actually changes state
type Transition struct {
	Index int
	Coord Coord
	Alive bool
}

// TransitionListener receives transitions in the order they are applied
type TransitionListener func(Transition)

// Lattice is a fixed-size 3D grid of cells stored in a flat slice.
//
// A cell at (x, y, z) lives at index x + width*y + width*height*z.
type Lattice struct {
	width  int
	height int
	depth  int
	cells  []bool

	listeners []TransitionListener
	history   []string // Recent lattice hashes for cycle detection
}

// NewLattice creates a lattice with every cell dead
func NewLattice(width, height, depth int) (*Lattice, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewLattice] got %dx%dx%d", width, height, depth)
	}
	return &Lattice{
		width:  width,
		height: height,
		depth:  depth,
		cells:  make([]bool, width*height*depth),
	}, nil
}

// GetWidth returns the extent along x
func (l *Lattice) GetWidth() int {
	return l.width
}

// GetHeight returns the extent along y
func (l *Lattice) GetHeight() int {
	return l.height
}

// GetDepth returns the extent along z
func (l *Lattice) GetDepth() int {
	return l.depth
}

// Len returns the number of cells
func (l *Lattice) Len() int {
	return len(l.cells)
}

// IndexOf maps coordinates to a linear index. Coordinates are not checked.
func (l *Lattice) IndexOf(x, y, z int) int {
	return x + l.width*y + l.width*l.height*z
}

// CoordsOf is the inverse of IndexOf for indices in [0, Len())
func (l *Lattice) CoordsOf(index int) Coord {
	plane := l.width * l.height
	rem := index % plane
	return Coord{
		X: rem % l.width,
		Y: rem / l.width,
		Z: index / plane,
	}
}

// InRange reports whether index addresses a cell
func (l *Lattice) InRange(index int) bool {
	return index >= 0 && index < len(l.cells)
}

// Contains reports whether c lies inside the lattice
func (l *Lattice) Contains(c Coord) bool {
	return c.X >= 0 && c.X < l.width &&
		c.Y >= 0 && c.Y < l.height &&
		c.Z >= 0 && c.Z < l.depth
}

// Get returns the state of the cell at index
func (l *Lattice) Get(index int) (bool, error) {
	if !l.InRange(index) {
		return false, errors.Wrapf(ErrIndexOutOfRange, "[Get] index %d not in [0, %d)", index, len(l.cells))
	}
	return l.cells[index], nil
}

// GetAt returns the state of the cell at c
func (l *Lattice) GetAt(c Coord) (bool, error) {
	if !l.Contains(c) {
		return false, errors.Wrapf(ErrCoordOutOfRange, "[GetAt] %+v outside %dx%dx%d", c, l.width, l.height, l.depth)
	}
	return l.cells[l.IndexOf(c.X, c.Y, c.Z)], nil
}

// Set sets the cell at index to alive (true) or dead (false).
// Listeners are only notified when the state changes.
func (l *Lattice) Set(index int, alive bool) error {
	if !l.InRange(index) {
		return errors.Wrapf(ErrIndexOutOfRange, "[Set] index %d not in [0, %d)", index, len(l.cells))
	}
	if l.cells[index] == alive {
		return nil
	}
	l.cells[index] = alive

	t := Transition{Index: index, Coord: l.CoordsOf(index), Alive: alive}
	for _, fn := range l.listeners {
		fn(t)
	}
	return nil
}

// SetAt sets the cell at c
func (l *Lattice) SetAt(c Coord, alive bool) error {
	if !l.Contains(c) {
		return errors.Wrapf(ErrCoordOutOfRange, "[SetAt] %+v outside %dx%dx%d", c, l.width, l.height, l.depth)
	}
	return l.Set(l.IndexOf(c.X, c.Y, c.Z), alive)
}

// OnTransition registers a listener for state changes
func (l *Lattice) OnTransition(fn TransitionListener) {
	if fn == nil {
		return
	}
	l.listeners = append(l.listeners, fn)
}

// ForEachIndex calls fn for every index in ascending order
func (l *Lattice) ForEachIndex(fn func(index int)) {
	for i := range len(l.cells) {
		fn(i)
	}
}

// Indices yields every index in ascending order
func (l *Lattice) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range len(l.cells) {
			if !yield(i) {
				return
			}
		}
	}
}

// NeighborCount counts living cells in the 3x3x3 cube around index,
// skipping the cell itself and anything past the lattice edges
func (l *Lattice) NeighborCount(index int) (int, error) {
	if !l.InRange(index) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "[NeighborCount] index %d not in [0, %d)", index, len(l.cells))
	}
	c := l.CoordsOf(index)

	minX, maxX := max(0, c.X-1), min(l.width-1, c.X+1)
	minY, maxY := max(0, c.Y-1), min(l.height-1, c.Y+1)
	minZ, maxZ := max(0, c.Z-1), min(l.depth-1, c.Z+1)

	count := 0
	for z := minZ; z <= maxZ; z++ {
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				if x == c.X && y == c.Y && z == c.Z {
					continue
				}
				if l.cells[l.IndexOf(x, y, z)] {
					count++
				}
			}
		}
	}
	return count, nil
}

// Offset is the translation that centers the lattice on the origin
func (l *Lattice) Offset() Coord {
	return Coord{X: -(l.width / 2), Y: -(l.height / 2), Z: -(l.depth / 2)}
}

// Position returns the centered world position of the cell at index
func (l *Lattice) Position(index int) r3.Vec {
	c, off := l.CoordsOf(index), l.Offset()
	return r3.Vec{
		X: float64(c.X + off.X),
		Y: float64(c.Y + off.Y),
		Z: float64(c.Z + off.Z),
	}
}

// CountAlive returns the total number of living cells
func (l *Lattice) CountAlive() (count int) {
	for _, alive := range l.cells {
		if alive {
			count++
		}
	}
	return
}

// AliveIndices returns the indices of living cells in ascending order
func (l *Lattice) AliveIndices() []int {
	var out []int
	for i, alive := range l.cells {
		if alive {
			out = append(out, i)
		}
	}
	return out
}

// Clear kills every cell, notifying listeners of each death
func (l *Lattice) Clear() {
	for i, alive := range l.cells {
		if alive {
			_ = l.Set(i, false)
		}
	}
	l.history = nil
}
