package main

import "github.com/ansipixels/cubeplay/pkg/math3d"

// mouseOrigin is the coordinate ansipixels reports for the first column and row.
const mouseOrigin = 1

const (
	labelCols  = 20 // "▶ " marker plus the slider label
	minBarCols = 8
)

// Layout splits the terminal into the 3D viewport on top and the slider panel
// below it. The framebuffer covers the whole terminal at two pixels per cell
// row (half blocks); only the viewport rows are projected into.
type Layout struct {
	W, H     int // terminal cells
	ViewRows int
	Sliders  int
	BarX     int
	BarW     int
}

// NewLayout reserves one status row plus one row per slider at the bottom.
func NewLayout(w, h, sliders int) Layout {
	l := Layout{W: w, H: h, Sliders: sliders, BarX: labelCols}
	l.ViewRows = max(h-(sliders+1), 1)
	l.BarW = max(w-labelCols-1, minBarCols)
	return l
}

// ViewportPixels returns the pixel size of the projected area.
func (l Layout) ViewportPixels() (w, h int) {
	return l.W, l.ViewRows * 2
}

// StatusRow is the row just below the viewport.
func (l Layout) StatusRow() int {
	return l.ViewRows
}

// SliderRow returns the row of slider i.
func (l Layout) SliderRow(i int) int {
	return l.ViewRows + 1 + i
}

// Cell converts a mouse position to 0-based cell coordinates.
func (l Layout) Cell(mx, my int) (cx, cy int) {
	return mx - mouseOrigin, my - mouseOrigin
}

// CellToPixel maps the center of a cell to framebuffer pixels.
func (l Layout) CellToPixel(cx, cy int) math3d.Vec2 {
	return math3d.V2(float64(cx)+0.5, float64(cy)*2+1)
}

// InViewport reports whether the cell belongs to the 3D view.
func (l Layout) InViewport(cx, cy int) bool {
	return cx >= 0 && cx < l.W && cy >= 0 && cy < l.ViewRows
}

// SliderAt returns the slider on row cy and, when cx is on its bar, the
// fractional bar position.
func (l Layout) SliderAt(cx, cy int) (idx int, frac float64, onBar bool) {
	idx = cy - (l.ViewRows + 1)
	if idx < 0 || idx >= l.Sliders {
		return -1, 0, false
	}
	if cx < l.BarX || cx >= l.BarX+l.BarW {
		return idx, 0, false
	}
	if l.BarW == 1 {
		return idx, 0, true
	}
	return idx, float64(cx-l.BarX) / float64(l.BarW-1), true
}
