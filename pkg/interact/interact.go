// Package interact implements click-and-drag vertex editing.
//
// The controller is a two-state machine over press, move and release events:
//
//	Idle --press on a vertex--> Dragging(i)
//	Dragging(i) --move with data coords--> Dragging(i)   (vertex i edited)
//	Dragging(i) --release--> Idle
//
// Events outside the viewport, and moves without data-space coordinates, are
// no-ops. A drag only edits the base (pre-transform) vertex set and keeps the
// vertex's local Z, so the vertex moves in a plane of constant local Z.
package interact

import (
	"fortio.org/log"
	"github.com/ansipixels/cubeplay/pkg/math3d"
	"github.com/ansipixels/cubeplay/pkg/pick"
	"github.com/ansipixels/cubeplay/pkg/scene"
)

// Viewport is what the controller needs from the host view.
type Viewport interface {
	pick.Projector
	// Redraw schedules a re-render. Requests may be coalesced.
	Redraw()
}

// Unprojector recovers the data-space point under a screen position, if defined
// for the current view.
type Unprojector interface {
	InverseProject(screen math3d.Vec2) (math3d.Vec2, bool)
}

// Event is one of Press, Move or Release.
type Event interface {
	event()
}

// Press is a button press at a screen position.
type Press struct {
	Screen     math3d.Vec2
	InViewport bool
}

// Move is a pointer motion. Data holds the data-space X/Y under the cursor when
// HasData is true.
type Move struct {
	Screen     math3d.Vec2
	Data       math3d.Vec2
	HasData    bool
	InViewport bool
}

// Release ends any drag, wherever it happens.
type Release struct{}

func (Press) event()   {}
func (Move) event()    {}
func (Release) event() {}

// NewMove builds a Move, asking u for the data-space point under screen.
// Positions outside the viewport carry no data.
func NewMove(u Unprojector, screen math3d.Vec2, inViewport bool) Move {
	m := Move{Screen: screen, InViewport: inViewport}
	if inViewport {
		m.Data, m.HasData = u.InverseProject(screen)
	}
	return m
}

// Controller drives vertex edits on a scene.
type Controller struct {
	scene     *scene.Scene
	view      Viewport
	Tolerance float64 // pick radius in pixels
}

// New returns a controller editing s through v with the default pick tolerance.
func New(s *scene.Scene, v Viewport) *Controller {
	return &Controller{scene: s, view: v, Tolerance: pick.DefaultTolerance}
}

// State returns the current drag state.
func (c *Controller) State() scene.DragState {
	return c.scene.Drag
}

// Handle dispatches ev and reports whether the scene changed.
func (c *Controller) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case Press:
		return c.Press(ev)
	case Move:
		return c.Move(ev)
	case Release:
		return c.Release()
	}
	return false
}

// Press picks the vertex nearest to the press position using freshly computed
// world vertices. A hit captures it; a miss leaves the controller Idle.
func (c *Controller) Press(ev Press) bool {
	if !ev.InViewport {
		return false
	}
	prev := c.scene.Drag
	if i, ok := pick.NearestVertex(c.view, c.scene.World(), ev.Screen, c.Tolerance); ok {
		c.scene.Drag = scene.Dragging(i)
		log.LogVf("drag start: vertex %d at %v", i, c.scene.Geometry.Vertex(i))
	} else {
		c.scene.Drag = scene.NoDrag()
	}
	if c.scene.Drag == prev {
		return false
	}
	c.view.Redraw()
	return true
}

// Move rewrites the captured vertex to (data.X, data.Y, oldZ) and requests a
// redraw. Without data coordinates the event is skipped and the drag stays
// active.
func (c *Controller) Move(ev Move) bool {
	i, ok := c.scene.Drag.Vertex()
	if !ok || !ev.InViewport || !ev.HasData {
		return false
	}
	old := c.scene.Geometry.Vertex(i)
	c.scene.Geometry.SetVertex(i, math3d.V3(ev.Data.X, ev.Data.Y, old.Z))
	c.view.Redraw()
	return true
}

// Release returns to Idle unconditionally.
func (c *Controller) Release() bool {
	i, was := c.scene.Drag.Vertex()
	c.scene.Drag = scene.NoDrag()
	if !was {
		return false
	}
	log.LogVf("drag end: vertex %d at %v", i, c.scene.Geometry.Vertex(i))
	c.view.Redraw()
	return true
}
