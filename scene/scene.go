// Package scene keeps the renderer's view of a lattice: one voxel per
// living cell, created when the cell is born and dropped when it dies.
package scene

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sheikhrachel/go-gol3d/model"
)

// Voxel is the visual stand-in for one living cell
type Voxel struct {
	Index    int
	Position r3.Vec
}

// Scene tracks voxels for a lattice by listening to its transitions
type Scene struct {
	lattice *model.Lattice
	voxels  map[int]*Voxel

	built     int
	destroyed int
}

// New creates a scene for lattice, picking up any cells already alive
func New(lattice *model.Lattice) *Scene {
	s := &Scene{
		lattice: lattice,
		voxels:  make(map[int]*Voxel),
	}
	for _, i := range lattice.AliveIndices() {
		s.add(i)
	}
	lattice.OnTransition(s.apply)
	return s
}

func (s *Scene) apply(t model.Transition) {
	if t.Alive {
		s.add(t.Index)
		return
	}
	s.remove(t.Index)
}

func (s *Scene) add(index int) {
	if _, ok := s.voxels[index]; ok {
		return
	}
	s.voxels[index] = &Voxel{Index: index, Position: s.lattice.Position(index)}
	s.built++
}

func (s *Scene) remove(index int) {
	if _, ok := s.voxels[index]; !ok {
		return
	}
	delete(s.voxels, index)
	s.destroyed++
}

// Len returns the number of voxels in the scene
func (s *Scene) Len() int {
	return len(s.voxels)
}

// Voxel returns the voxel for index, if the cell is alive
func (s *Scene) Voxel(index int) (*Voxel, bool) {
	v, ok := s.voxels[index]
	return v, ok
}

// Voxels returns every voxel ordered by lattice index
func (s *Scene) Voxels() []*Voxel {
	out := make([]*Voxel, 0, len(s.voxels))
	for _, v := range s.voxels {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b *Voxel) int { return a.Index - b.Index })
	return out
}

// Built returns how many voxels have been created since the scene started
func (s *Scene) Built() int {
	return s.built
}

// Destroyed returns how many voxels have been removed since the scene started
func (s *Scene) Destroyed() int {
	return s.destroyed
}

// Bounds returns the corners of the lattice's bounding box centered on
// the origin
func (s *Scene) Bounds() (lo, hi r3.Vec) {
	half := r3.Vec{
		X: float64(s.lattice.GetWidth()) / 2,
		Y: float64(s.lattice.GetHeight()) / 2,
		Z: float64(s.lattice.GetDepth()) / 2,
	}
	return r3.Scale(-1, half), half
}
