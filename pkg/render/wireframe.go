package render

import (
	"github.com/ansipixels/cubeplay/pkg/geometry"
	"github.com/ansipixels/cubeplay/pkg/math3d"
	"github.com/ansipixels/cubeplay/pkg/pick"
)

// Style controls wireframe colors.
type Style struct {
	Edge      Color
	Vertex    Color
	Highlight Color
	Box       Color
}

// DefaultStyle is green edges with a dim bounding box.
var DefaultStyle = Style{
	Edge:      RGB(0, 255, 128),
	Vertex:    RGB(230, 230, 230),
	Highlight: RGB(255, 200, 0),
	Box:       RGB(60, 60, 80),
}

// DataLimit is the half-extent of the fixed view volume on every axis.
const DataLimit = 4.0

// Wireframe draws edges between projected world vertices and a marker per
// vertex. highlight is the captured vertex index, or -1.
func Wireframe(fb *Framebuffer, proj pick.Projector, world []math3d.Vec3, edges []geometry.Edge, highlight int, st Style) {
	pts := pick.ProjectAll(proj, world)
	for _, e := range edges {
		a, b := pts[e[0]], pts[e[1]]
		fb.DrawLine(a.X, a.Y, b.X, b.Y, st.Edge)
	}
	for _, p := range pts {
		fb.SetPixelF(p.X, p.Y, st.Vertex)
	}
	if highlight >= 0 && highlight < len(pts) {
		p := pts[highlight]
		fb.DrawMarker(p.X, p.Y, 1, st.Highlight)
	}
}

// Box draws the outline of the [-DataLimit, DataLimit]³ view volume.
func Box(fb *Framebuffer, proj pick.Projector, c Color) {
	corners := geometry.NewCube().Vertices()
	for i := range corners {
		corners[i] = corners[i].Scale(DataLimit)
	}
	pts := pick.ProjectAll(proj, corners)
	for _, e := range geometry.NewCube().Edges() {
		a, b := pts[e[0]], pts[e[1]]
		fb.DrawLine(a.X, a.Y, b.X, b.Y, c)
	}
}

// SetPixelF sets the pixel containing a fractional position.
func (fb *Framebuffer) SetPixelF(x, y float64, c Color) {
	fb.DrawMarker(x, y, 0, c)
}
