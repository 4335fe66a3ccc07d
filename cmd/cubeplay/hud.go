package main

import (
	"time"

	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"
	"github.com/ansipixels/cubeplay/pkg/scene"
	"github.com/ansipixels/cubeplay/pkg/widget"
)

const helpLine = "drag vertex: mouse  sliders: j/k h/l or click  orbit: w/a/s/d  zoom: +/-  reset: r 0 c  quit: q"

// HUD renders the title line, the drag status and the slider panel.
type HUD struct {
	ShowHelp  bool
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD.
func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Draw writes the overlay on top of the rendered image.
func (h *HUD) Draw(ap *ansipixels.AnsiPixels, l Layout, s *scene.Scene, panel *widget.Panel) {
	ap.WriteCentered(0, "%s", "Transformation Visualiser")
	ap.WriteAt(0, 0, tcolor.Green.Foreground()+"%.0f FPS "+tcolor.Reset, h.fps)
	if h.ShowHelp {
		ap.WriteCentered(1, "%s%s%s", tcolor.Yellow.Foreground(), helpLine, tcolor.Reset)
	}

	status := tcolor.Cyan.Foreground()
	if s.Drag.Active() {
		status = tcolor.BrightYellow.Foreground()
	}
	ap.WriteAt(0, l.StatusRow(), "%s%s%s", status, s.Drag, tcolor.Reset)
	ap.WriteRight(l.StatusRow(), "%s?: help%s", tcolor.Yellow.Foreground(), tcolor.Reset)

	for i, sl := range panel.Sliders {
		marker := "  "
		if i == panel.Selected {
			marker = "▶ "
		}
		ap.WriteAt(0, l.SliderRow(i), "%s%s", marker, sl.Label())
		ap.WriteAt(l.BarX, l.SliderRow(i), "%s%s%s", tcolor.Cyan.Foreground(), sl.Bar(l.BarW), tcolor.Reset)
	}
}
