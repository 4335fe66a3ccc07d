// Package models converts the edited cube into a standalone wireframe and
// reads/writes it as binary glTF or Wavefront OBJ.
package models

import (
	"github.com/ansipixels/cubeplay/pkg/geometry"
	"github.com/ansipixels/cubeplay/pkg/math3d"
	"github.com/ansipixels/cubeplay/pkg/scene"
)

// Wireframe is a set of points joined by edges.
type Wireframe struct {
	Name     string
	Vertices []math3d.Vec3
	Edges    []geometry.Edge

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewWireframe creates an empty wireframe.
func NewWireframe(name string) *Wireframe {
	return &Wireframe{Name: name}
}

// Snapshot captures the scene's world-space geometry under the current
// parameters.
func Snapshot(s *scene.Scene, name string) *Wireframe {
	wf := &Wireframe{
		Name:     name,
		Vertices: s.World(),
		Edges:    s.Edges(),
	}
	wf.CalculateBounds()
	return wf
}

// CalculateBounds computes the axis-aligned bounding box.
func (w *Wireframe) CalculateBounds() {
	w.BoundsMin, w.BoundsMax = geometry.Bounds(w.Vertices)
}

// Center returns the center of the bounding box.
func (w *Wireframe) Center() math3d.Vec3 {
	return w.BoundsMin.Add(w.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (w *Wireframe) Size() math3d.Vec3 {
	return w.BoundsMax.Sub(w.BoundsMin)
}

// VertexCount returns the number of vertices.
func (w *Wireframe) VertexCount() int {
	return len(w.Vertices)
}

// EdgeCount returns the number of edges.
func (w *Wireframe) EdgeCount() int {
	return len(w.Edges)
}
