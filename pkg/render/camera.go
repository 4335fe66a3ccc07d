package render

import (
	"math"

	"github.com/ansipixels/cubeplay/pkg/math3d"
)

// Camera is a perspective orbit camera around a target point, with Z up.
// It maps world space to framebuffer pixels and back onto the z = 0 data plane.
type Camera struct {
	Target    math3d.Vec3
	Azimuth   float64 // degrees around +Z, measured from +X
	Elevation float64 // degrees above the XY plane
	Distance  float64
	FOV       float64 // vertical field of view in radians
	Near, Far float64

	width, height float64
}

// Camera defaults frame the [-4,4]³ data volume.
const (
	DefaultAzimuth   = -60.0
	DefaultElevation = 30.0
	DefaultDistance  = 16.0
	MinDistance      = 4.0
	MaxDistance      = 40.0
	maxElevation     = 89.0
)

// NewCamera returns a camera with the default view for a w×h pixel viewport.
func NewCamera(w, h int) *Camera {
	c := &Camera{
		Azimuth:   DefaultAzimuth,
		Elevation: DefaultElevation,
		Distance:  DefaultDistance,
		FOV:       math.Pi / 3,
		Near:      0.1,
		Far:       100,
	}
	c.SetViewport(w, h)
	return c
}

// SetViewport updates the pixel size the camera projects into.
func (c *Camera) SetViewport(w, h int) {
	c.width, c.height = float64(max(w, 1)), float64(max(h, 1))
}

// Viewport returns the pixel size.
func (c *Camera) Viewport() (w, h int) {
	return int(c.width), int(c.height)
}

// Orbit rotates the view by the given degrees. Elevation is kept short of
// the poles so the up vector stays defined.
func (c *Camera) Orbit(dAzimuth, dElevation float64) {
	c.Azimuth = math.Mod(c.Azimuth+dAzimuth, 360)
	c.Elevation = min(max(c.Elevation+dElevation, -maxElevation), maxElevation)
}

// Zoom multiplies the distance by factor, within [MinDistance, MaxDistance].
func (c *Camera) Zoom(factor float64) {
	c.Distance = min(max(c.Distance*factor, MinDistance), MaxDistance)
}

// Reset restores the default orientation and distance.
func (c *Camera) Reset() {
	c.Azimuth, c.Elevation, c.Distance = DefaultAzimuth, DefaultElevation, DefaultDistance
}

// Eye returns the camera position.
func (c *Camera) Eye() math3d.Vec3 {
	az := c.Azimuth * math.Pi / 180
	el := c.Elevation * math.Pi / 180
	dir := math3d.V3(math.Cos(el)*math.Cos(az), math.Cos(el)*math.Sin(az), math.Sin(el))
	return c.Target.Add(dir.Scale(c.Distance))
}

func (c *Camera) aspect() float64 {
	return c.width / c.height
}

// basis returns the forward, right and up unit vectors.
func (c *Camera) basis() (f, s, u math3d.Vec3) {
	f = c.Target.Sub(c.Eye()).Normalize()
	s = f.Cross(math3d.V3(0, 0, 1)).Normalize()
	u = s.Cross(f)
	return f, s, u
}

// ViewProjection returns projection × view.
func (c *Camera) ViewProjection() math3d.Mat4 {
	view := math3d.LookAt(c.Eye(), c.Target, math3d.V3(0, 0, 1))
	proj := math3d.Perspective(c.FOV, c.aspect(), c.Near, c.Far)
	return proj.Mul(view)
}

// Project maps a world point to pixel coordinates, Y growing downward.
// Points at or behind the eye plane map to NaN so they never draw or pick.
func (c *Camera) Project(p math3d.Vec3) math3d.Vec2 {
	clip := c.ViewProjection().MulVec4(math3d.V4FromV3(p, 1))
	if clip.W <= 0 {
		return math3d.V2(math.NaN(), math.NaN())
	}
	ndc := clip.PerspectiveDivide()
	return math3d.V2((ndc.X+1)*0.5*c.width, (1-ndc.Y)*0.5*c.height)
}

// InverseProject casts the ray under a pixel and intersects it with the data
// plane z = 0, returning the data-space X/Y of the hit. It reports false when
// the ray is parallel to the plane or the hit is behind the eye.
func (c *Camera) InverseProject(screen math3d.Vec2) (math3d.Vec2, bool) {
	ndcX := 2*screen.X/c.width - 1
	ndcY := 1 - 2*screen.Y/c.height
	tanHalf := math.Tan(c.FOV / 2)
	f, s, u := c.basis()
	dir := f.Add(s.Scale(ndcX * tanHalf * c.aspect())).Add(u.Scale(ndcY * tanHalf))
	if math.Abs(dir.Z) < 1e-9 {
		return math3d.Vec2{}, false
	}
	eye := c.Eye()
	t := -eye.Z / dir.Z
	if t <= 0 {
		return math3d.Vec2{}, false
	}
	hit := eye.Add(dir.Scale(t))
	return math3d.V2(hit.X, hit.Y), true
}
