package main

import (
	"context"
	"fmt"
	"math"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"github.com/ansipixels/cubeplay/pkg/interact"
	"github.com/ansipixels/cubeplay/pkg/math3d"
	"github.com/ansipixels/cubeplay/pkg/models"
	"github.com/ansipixels/cubeplay/pkg/params"
	"github.com/ansipixels/cubeplay/pkg/render"
	"github.com/ansipixels/cubeplay/pkg/scene"
	"github.com/ansipixels/cubeplay/pkg/widget"
)

const (
	orbitImpulse = 1.5 // degrees per frame added per keypress
	zoomStep     = 1.1
)

// View is the host viewport: it projects through the orbit camera and
// coalesces redraw requests until the next frame.
type View struct {
	Camera *render.Camera
	dirty  bool
}

// Project implements pick.Projector.
func (v *View) Project(p math3d.Vec3) math3d.Vec2 {
	return v.Camera.Project(p)
}

// InverseProject implements interact.Unprojector.
func (v *View) InverseProject(screen math3d.Vec2) (math3d.Vec2, bool) {
	return v.Camera.InverseProject(screen)
}

// Redraw schedules a re-render on the next frame.
func (v *View) Redraw() {
	v.dirty = true
}

// Viewer ties the scene, its controllers and the terminal together.
type Viewer struct {
	Scene  *scene.Scene
	View   *View
	Layout Layout
	Panel  *widget.Panel
	Params *params.Controller
	Drag   *interact.Controller
	Orbit  *Orbit
	HUD    *HUD

	sliderDrag bool
}

// NewViewer wires the controllers for a w x h cell terminal.
func NewViewer(cfg Config, w, h int) *Viewer {
	fps := int(math.Round(cfg.FPS))
	s := scene.New()
	panel := widget.NewPanel(widget.DefaultParams(cfg.ScaleZ), fps)
	l := NewLayout(w, h, len(panel.Sliders))
	view := &View{Camera: render.NewCamera(l.ViewportPixels())}

	v := &Viewer{
		Scene:  s,
		View:   view,
		Layout: l,
		Panel:  panel,
		Params: params.New(s, view),
		Drag:   interact.New(s, view),
		Orbit:  NewOrbit(fps),
		HUD:    NewHUD(),
	}
	v.Drag.Tolerance = cfg.Tolerance
	for i, p := range panel.Params {
		v.Params.Bind(p, panel.Sliders[i])
	}
	v.Params.OnChange()
	return v
}

// Resize adapts the layout and the camera to a new terminal size.
func (v *Viewer) Resize(w, h int) {
	v.Layout = NewLayout(w, h, len(v.Panel.Sliders))
	v.View.Camera.SetViewport(v.Layout.ViewportPixels())
	v.View.Redraw()
}

// HandleMouse dispatches the mouse event ansipixels last decoded. An SGR
// release reports the released button, so a left release also reads as
// LeftClick and must not be taken for a press.
func (v *Viewer) HandleMouse(ap *ansipixels.AnsiPixels) {
	switch {
	case ap.MouseWheelUp():
		v.View.Camera.Zoom(1 / zoomStep)
		v.View.Redraw()
		return
	case ap.MouseWheelDown():
		v.View.Camera.Zoom(zoomStep)
		v.View.Redraw()
		return
	}
	release := ap.MouseRelease()
	v.Mouse(ap.Mx, ap.My, ap.LeftClick() && !release, ap.LeftDrag(), release)
}

// Mouse dispatches a mouse event at terminal position (mx, my). Release wins
// over the other flags.
func (v *Viewer) Mouse(mx, my int, press, drag, release bool) {
	cx, cy := v.Layout.Cell(mx, my)
	pos := v.Layout.CellToPixel(cx, cy)
	inView := v.Layout.InViewport(cx, cy)
	switch {
	case release:
		v.Drag.Handle(interact.Release{})
		v.sliderDrag = false
	case press:
		v.Drag.Handle(interact.Press{Screen: pos, InViewport: inView})
		v.sliderDrag = !inView && v.clickPanel(cx, cy)
	case drag:
		if v.sliderDrag {
			v.clickPanel(cx, cy)
			return
		}
		v.Drag.Handle(interact.NewMove(v.View, pos, inView))
	}
}

// clickPanel selects the slider under the cell and moves it when the cell is
// on its bar. It reports whether a bar was hit.
func (v *Viewer) clickPanel(cx, cy int) bool {
	idx, frac, onBar := v.Layout.SliderAt(cx, cy)
	if idx < 0 {
		return false
	}
	v.Panel.Selected = idx
	if onBar {
		v.Panel.Sliders[idx].SetFraction(frac)
	}
	v.View.Redraw()
	return onBar
}

// Key applies one keypress and reports whether the viewer should keep running.
func (v *Viewer) Key(k Key) bool {
	switch k {
	case 'q', 'Q', KeyEsc, 3, 4: // Ctrl-C, Ctrl-D
		return false
	case 'h', KeyLeft:
		v.Panel.Current().Nudge(-1)
	case 'l', KeyRight:
		v.Panel.Current().Nudge(1)
	case 'H':
		v.Panel.Current().Nudge(-10)
	case 'L':
		v.Panel.Current().Nudge(10)
	case 'j', KeyDown:
		v.Panel.Select(1)
		v.View.Redraw()
	case 'k', KeyUp:
		v.Panel.Select(-1)
		v.View.Redraw()
	case 'a', 'A':
		v.Orbit.Impulse(-orbitImpulse, 0)
	case 'd', 'D':
		v.Orbit.Impulse(orbitImpulse, 0)
	case 'w', 'W':
		v.Orbit.Impulse(0, orbitImpulse)
	case 's', 'S':
		v.Orbit.Impulse(0, -orbitImpulse)
	case '+', '=':
		v.View.Camera.Zoom(1 / zoomStep)
		v.View.Redraw()
	case '-', '_':
		v.View.Camera.Zoom(zoomStep)
		v.View.Redraw()
	case 'r', 'R':
		v.Scene.Geometry.Reset()
		log.LogVf("geometry reset")
		v.View.Redraw()
	case '0':
		v.Panel.Reset()
	case 'c', 'C':
		v.Orbit.Reset()
		v.View.Camera.Reset()
		v.View.Redraw()
	case '?':
		v.HUD.ShowHelp = !v.HUD.ShowHelp
		v.View.Redraw()
	}
	return true
}

// Tick advances the slider and orbit animations by one frame and reports
// whether anything needs to be drawn.
func (v *Viewer) Tick() bool {
	if v.Panel.Update() {
		v.Params.OnChange()
	}
	if v.Orbit.Update(v.View.Camera) {
		v.View.Redraw()
	}
	dirty := v.View.dirty
	v.View.dirty = false
	return dirty
}

// Render draws the bounding volume and the transformed wireframe into fb.
func (v *Viewer) Render(fb *render.Framebuffer) {
	fb.Clear()
	render.Box(fb, v.View, render.DefaultStyle.Box)
	highlight := -1
	if i, ok := v.Scene.Drag.Vertex(); ok {
		highlight = i
	}
	render.Wireframe(fb, v.View, v.Scene.World(), v.Scene.Edges(), highlight, render.DefaultStyle)
}

// Snapshot returns the current world-space cube for export.
func (v *Viewer) Snapshot() *models.Wireframe {
	return models.Snapshot(v.Scene, "cubeplay")
}

func runViewer(ctx context.Context, cfg Config) (err error) {
	if cfg.FPS <= 0 {
		return fmt.Errorf("invalid fps %v: must be positive", cfg.FPS)
	}
	ap := ansipixels.NewAnsiPixels(cfg.FPS)
	if err = ap.Open(); err != nil {
		return fmt.Errorf("open ansipixels: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.MouseTrackingOn()
	ap.HideCursor()

	if ap.W <= 0 || ap.H <= 0 {
		return fmt.Errorf("invalid terminal size: %dx%d", ap.W, ap.H)
	}

	v := NewViewer(cfg, ap.W, ap.H)

	// Using 2x height for half-block characters
	fb := render.NewFramebuffer(ap.W, ap.H*2)

	ap.OnMouse = func() {
		v.HandleMouse(ap)
	}
	ap.OnResize = func() error {
		fb.Resize(ap.W, ap.H*2)
		v.Resize(ap.W, ap.H)
		return nil
	}

	// FPSTicks wraps each frame in sync mode and has already decoded the
	// mouse events out of ap.Data.
	var showErr error
	err = ap.FPSTicks(ctx, func(context.Context) bool {
		for _, k := range DecodeKeys(ap.Data) {
			if !v.Key(k) {
				return false
			}
		}
		v.HUD.UpdateFPS()
		if !v.Tick() {
			return true
		}
		v.Render(fb)
		ap.ClearScreen()
		if showErr = ap.ShowScaledImage(fb.ToImage()); showErr != nil {
			log.Errf("show image: %v", showErr)
			return false
		}
		v.HUD.Draw(ap, v.Layout, v.Scene, v.Panel)
		return true
	})
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	if showErr != nil {
		return fmt.Errorf("show image: %w", showErr)
	}

	if cfg.Export != "" {
		if err = models.Export(cfg.Export, v.Snapshot()); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		log.Infof("Exported %s (params %+v)", cfg.Export, v.Scene.Params)
	}
	return nil
}
