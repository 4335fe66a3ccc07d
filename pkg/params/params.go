// Package params connects UI controls to the scene's transform parameters.
package params

import (
	"fortio.org/log"
	"github.com/ansipixels/cubeplay/pkg/scene"
	"github.com/ansipixels/cubeplay/pkg/transform"
)

// Control is a UI input holding a numeric value, typically a slider.
// Clamping to the documented range is the control's job.
type Control interface {
	Value() float64
}

// Fixed is a Control that never changes.
type Fixed float64

// Value implements Control.
func (f Fixed) Value() float64 { return float64(f) }

// Redrawer schedules a re-render.
type Redrawer interface {
	Redraw()
}

// Controller owns the mapping from the nine parameters to their controls.
// Parameters without a bound control read as their default, so scaleZ stays
// 1.0 unless the UI binds a control for it.
type Controller struct {
	scene    *scene.Scene
	view     Redrawer
	controls [transform.NumParams]Control
}

// New returns a controller with no controls bound.
func New(s *scene.Scene, v Redrawer) *Controller {
	return &Controller{scene: s, view: v}
}

// Bind attaches ctl to parameter p; a nil ctl unbinds it.
func (c *Controller) Bind(p transform.Param, ctl Control) {
	c.controls[p] = ctl
}

// Bound reports whether p has a control.
func (c *Controller) Bound(p transform.Param) bool {
	return c.controls[p] != nil
}

// Read returns the parameters currently shown by the controls.
func (c *Controller) Read() transform.Params {
	var v [transform.NumParams]float64
	for i, ctl := range c.controls {
		if ctl == nil {
			v[i] = transform.Param(i).Range().Default
			continue
		}
		v[i] = ctl.Value()
	}
	return transform.FromValues(v)
}

// OnChange is the single entry point for any control change. It re-reads all
// nine parameters, replaces the scene's parameters in one assignment and
// requests a redraw.
func (c *Controller) OnChange() {
	c.scene.Params = c.Read()
	log.LogVf("params: %+v", c.scene.Params)
	c.view.Redraw()
}
