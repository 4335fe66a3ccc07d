package main

import (
	"math"

	"github.com/ansipixels/cubeplay/pkg/render"
	"github.com/charmbracelet/harmonica"
)

const (
	restVelocity = 1e-3 // degrees per frame below which an axis stops
	defaultFPS   = 60
)

// OrbitAxis tracks the angular velocity of one camera axis with spring decay.
type OrbitAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewOrbitAxis creates an axis with a harmonica spring for smooth velocity decay.
func NewOrbitAxis(fps int) OrbitAxis {
	return OrbitAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Step returns this frame's angle increment and decays the velocity toward 0.
func (a *OrbitAxis) Step() float64 {
	d := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	if math.Abs(a.Velocity) < restVelocity {
		a.Velocity, a.velAccel = 0, 0
	}
	return d
}

// Orbit drives the camera azimuth and elevation from keyboard impulses.
type Orbit struct {
	Azimuth, Elevation OrbitAxis
	fps                int
}

// NewOrbit creates a resting orbit; fps <= 0 falls back to defaultFPS.
func NewOrbit(fps int) *Orbit {
	if fps <= 0 {
		fps = defaultFPS
	}
	return &Orbit{
		Azimuth:   NewOrbitAxis(fps),
		Elevation: NewOrbitAxis(fps),
		fps:       fps,
	}
}

// Impulse adds angular velocity, in degrees per frame.
func (o *Orbit) Impulse(azimuth, elevation float64) {
	o.Azimuth.Velocity += azimuth
	o.Elevation.Velocity += elevation
}

// Moving reports whether either axis still has velocity.
func (o *Orbit) Moving() bool {
	return o.Azimuth.Velocity != 0 || o.Elevation.Velocity != 0
}

// Update advances one frame, rotating cam. It reports whether the view moved.
func (o *Orbit) Update(cam *render.Camera) bool {
	if !o.Moving() {
		return false
	}
	cam.Orbit(o.Azimuth.Step(), o.Elevation.Step())
	return true
}

// Reset stops both axes.
func (o *Orbit) Reset() {
	o.Azimuth = NewOrbitAxis(o.fps)
	o.Elevation = NewOrbitAxis(o.fps)
}
