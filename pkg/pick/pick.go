// Package pick projects world-space points to the screen and resolves a
// screen-space click to the nearest vertex.
package pick

import (
	"math"

	"github.com/ansipixels/cubeplay/pkg/math3d"
)

// DefaultTolerance is the pick radius in pixels.
const DefaultTolerance = 10.0

// Projector maps a world-space point to pixel coordinates using the host's
// current camera. The mapping may change between calls.
type Projector interface {
	Project(p math3d.Vec3) math3d.Vec2
}

// ProjectorFunc adapts a plain function to Projector.
type ProjectorFunc func(p math3d.Vec3) math3d.Vec2

// Project implements Projector.
func (f ProjectorFunc) Project(p math3d.Vec3) math3d.Vec2 {
	return f(p)
}

// ProjectAll projects every point. Nothing is cached.
func ProjectAll(proj Projector, world []math3d.Vec3) []math3d.Vec2 {
	out := make([]math3d.Vec2, len(world))
	for i, p := range world {
		out[i] = proj.Project(p)
	}
	return out
}

// Nearest returns the index of the screen point closest to at, provided that
// distance is strictly less than tol. On exact ties the lowest index wins.
// Points whose distance is NaN never match.
func Nearest(at math3d.Vec2, points []math3d.Vec2, tol float64) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for i, p := range points {
		if d := at.Distance(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || !(bestDist < tol) {
		return -1, false
	}
	return best, true
}

// NearestVertex projects the given world-space vertices with proj and picks
// the one nearest to at. Callers pass the world vertices of the current
// geometry and parameters so no stale projection is ever used.
func NearestVertex(proj Projector, world []math3d.Vec3, at math3d.Vec2, tol float64) (int, bool) {
	return Nearest(at, ProjectAll(proj, world), tol)
}
