// Package camera projects lattice space onto the screen with an orbit
// camera that always looks at the origin.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	DefaultFOV = 75 * math.Pi / 180
	nearPlane  = 0.1

	maxPitch    = math.Pi/2 - 0.01
	minDistance = 2.0
	maxDistance = 1000.0
)

var (
	yAxis = r3.Vec{Y: 1}
	xAxis = r3.Vec{X: 1}
)

// Orbit is a perspective camera circling the origin.
// Yaw turns around the vertical axis, pitch tilts toward it.
type Orbit struct {
	Yaw      float64
	Pitch    float64
	Distance float64
	FOV      float64
}

// NewOrbit places the camera the way the voxel view starts: above and to
// the side of a lattice of the given extent
func NewOrbit(extent float64) *Orbit {
	// Eye at (extent, extent+5, extent) looking at the origin
	eye := r3.Vec{X: extent, Y: extent + 5, Z: extent}
	horizontal := math.Hypot(eye.X, eye.Z)
	return &Orbit{
		Yaw:      math.Atan2(eye.X, eye.Z),
		Pitch:    math.Atan2(eye.Y, horizontal),
		Distance: r3.Norm(eye),
		FOV:      DefaultFOV,
	}
}

// Rotate turns the camera by the given angles in radians
func (o *Orbit) Rotate(dYaw, dPitch float64) {
	o.Yaw = math.Mod(o.Yaw+dYaw, 2*math.Pi)
	o.Pitch = math.Max(-maxPitch, math.Min(maxPitch, o.Pitch+dPitch))
}

// Zoom scales the distance to the origin by factor
func (o *Orbit) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	o.Distance = math.Max(minDistance, math.Min(maxDistance, o.Distance*factor))
}

// ToView moves a world point into camera space, where the camera sits at
// (0, 0, Distance) looking down -z
func (o *Orbit) ToView(p r3.Vec) r3.Vec {
	p = r3.NewRotation(-o.Yaw, yAxis).Rotate(p)
	return r3.NewRotation(o.Pitch, xAxis).Rotate(p)
}

// Project maps a world point to screen pixels for a screen of w by h.
// depth is the distance along the view axis; ok is false for points
// behind the near plane.
func (o *Orbit) Project(p r3.Vec, w, h int) (x, y, depth float64, ok bool) {
	v := o.ToView(p)
	depth = o.Distance - v.Z
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	f := o.focal(h)
	x = float64(w)/2 + v.X*f/depth
	y = float64(h)/2 - v.Y*f/depth
	return x, y, depth, true
}

// Scale returns the on-screen size of a unit length at depth
func (o *Orbit) Scale(depth float64, h int) float64 {
	if depth < nearPlane {
		return 0
	}
	return o.focal(h) / depth
}

func (o *Orbit) focal(h int) float64 {
	fov := o.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	return float64(h) / 2 / math.Tan(fov/2)
}
