// Package scene holds the explicit application state shared by the event
// handlers: the editable geometry, the current transform parameters and the
// drag state. It is owned by a single event loop and has no locking.
package scene

import (
	"fmt"

	"github.com/ansipixels/cubeplay/pkg/geometry"
	"github.com/ansipixels/cubeplay/pkg/math3d"
	"github.com/ansipixels/cubeplay/pkg/transform"
)

// DragState is either "none" or the index of the vertex captured by an
// in-progress drag. The zero value is "none".
type DragState struct {
	index  int
	active bool
}

// NoDrag returns the "none" drag state.
func NoDrag() DragState {
	return DragState{}
}

// Dragging returns the drag state capturing vertex i.
func Dragging(i int) DragState {
	return DragState{index: i, active: true}
}

// Vertex returns the captured vertex index, if any.
func (d DragState) Vertex() (int, bool) {
	return d.index, d.active
}

// Active reports whether a drag is in progress.
func (d DragState) Active() bool {
	return d.active
}

func (d DragState) String() string {
	if !d.active {
		return "Idle"
	}
	return fmt.Sprintf("Dragging(%d)", d.index)
}

// Scene is the application state passed by reference into every handler.
type Scene struct {
	Geometry *geometry.Store
	Params   transform.Params
	Drag     DragState
}

// New returns a scene with the default cube, identity parameters and no drag.
func New() *Scene {
	return &Scene{
		Geometry: geometry.NewCube(),
		Params:   transform.Defaults(),
	}
}

// World returns the current vertices mapped through the current parameters.
// It is recomputed on every call and never stored.
func (s *Scene) World() []math3d.Vec3 {
	return transform.Apply(s.Geometry.Vertices(), s.Params)
}

// Edges returns the fixed edge list.
func (s *Scene) Edges() []geometry.Edge {
	return s.Geometry.Edges()
}
