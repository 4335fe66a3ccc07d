// Package render draws the wireframe scene into an RGB framebuffer that the
// terminal viewer displays with half-block pixels.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Common colors.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorRed   = RGB(255, 0, 0)
	ColorGreen = RGB(0, 255, 0)
)

// Framebuffer is a row-major pixel grid.
type Framebuffer struct {
	Width, Height int
	Pixels        []Color
	BG            color.RGBA
}

// NewFramebuffer creates a framebuffer of w×h pixels.
func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates the pixel grid; contents are cleared.
func (fb *Framebuffer) Resize(w, h int) {
	fb.Width, fb.Height = max(w, 0), max(h, 0)
	fb.Pixels = make([]Color, fb.Width*fb.Height)
	fb.Clear()
}

// Clear fills the framebuffer with the background color.
func (fb *Framebuffer) Clear() {
	bg := RGB(fb.BG.R, fb.BG.G, fb.BG.B)
	for i := range fb.Pixels {
		fb.Pixels[i] = bg
	}
}

// SetPixel sets a pixel; out of bounds writes are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns a pixel, or black out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return ColorBlack
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line between two pixel positions, clipped to the buffer.
// Lines with a non-finite endpoint are skipped.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 float64, c Color) {
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, 0, 0, float64(fb.Width-1), float64(fb.Height-1))
	if !ok {
		return
	}
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	// Bresenham.
	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	e := dx + dy
	for {
		fb.SetPixel(ix0, iy0, c)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ix0 += sx
		}
		if e2 <= dx {
			e += dx
			iy0 += sy
		}
	}
}

// DrawMarker fills a square of half-size r centered on (x, y).
func (fb *Framebuffer) DrawMarker(x, y float64, r int, c Color) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return
	}
	cx, cy := int(math.Round(x)), int(math.Round(y))
	for j := -r; j <= r; j++ {
		for i := -r; i <= r; i++ {
			fb.SetPixel(cx+i, cy+j, c)
		}
	}
}

// ToImage converts the framebuffer to an image.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			p := fb.Pixels[y*fb.Width+x]
			img.SetRGBA(x, y, color.RGBA{p.R, p.G, p.B, 255})
		}
	}
	return img
}

// SavePNG writes the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, fb.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
)

func outCode(x, y, xmin, ymin, xmax, ymax float64) int {
	code := 0
	switch {
	case x < xmin:
		code |= outLeft
	case x > xmax:
		code |= outRight
	}
	switch {
	case y < ymin:
		code |= outTop
	case y > ymax:
		code |= outBottom
	}
	return code
}

// clipLine is Cohen-Sutherland clipping against [xmin,xmax]×[ymin,ymax].
func clipLine(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	for _, v := range []float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	if xmax < xmin || ymax < ymin {
		return 0, 0, 0, 0, false
	}
	c0 := outCode(x0, y0, xmin, ymin, xmax, ymax)
	c1 := outCode(x1, y1, xmin, ymin, xmax, ymax)
	for {
		switch {
		case c0|c1 == 0:
			return x0, y0, x1, y1, true
		case c0&c1 != 0:
			return 0, 0, 0, 0, false
		}
		out := c0
		if out == 0 {
			out = c1
		}
		var x, y float64
		switch {
		case out&outBottom != 0:
			x = x0 + (x1-x0)*(ymax-y0)/(y1-y0)
			y = ymax
		case out&outTop != 0:
			x = x0 + (x1-x0)*(ymin-y0)/(y1-y0)
			y = ymin
		case out&outRight != 0:
			y = y0 + (y1-y0)*(xmax-x0)/(x1-x0)
			x = xmax
		default:
			y = y0 + (y1-y0)*(xmin-x0)/(x1-x0)
			x = xmin
		}
		if out == c0 {
			x0, y0 = x, y
			c0 = outCode(x0, y0, xmin, ymin, xmax, ymax)
		} else {
			x1, y1 = x, y
			c1 = outCode(x1, y1, xmin, ymin, xmax, ymax)
		}
	}
}
