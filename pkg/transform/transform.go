// Package transform is the transform engine: it composes rotation, scale and
// translation parameters into an affine map and applies it to point sets.
// Everything here is pure; identical inputs always give identical outputs.
package transform

import (
	"math"

	"github.com/ansipixels/cubeplay/pkg/math3d"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Compose returns the linear part of the transform, Rx · Ry · Rz · S.
// Acting on a column vector, scale is applied first, then the Z, Y and X
// rotations in that order.
func Compose(p Params) math3d.Mat3 {
	rx := math3d.RotateX3(Radians(p.RotX))
	ry := math3d.RotateY3(Radians(p.RotY))
	rz := math3d.RotateZ3(Radians(p.RotZ))
	s := math3d.Diag3(p.ScaleX, p.ScaleY, p.ScaleZ)
	return rx.Mul(ry).Mul(rz).Mul(s)
}

// Translation returns the translation vector, added after the linear map.
func Translation(p Params) math3d.Vec3 {
	return math3d.V3(p.TransX, p.TransY, p.TransZ)
}

// Apply returns a new slice with every point mapped through the composed
// linear part and then shifted by the translation. The input is not modified.
func Apply(points []math3d.Vec3, p Params) []math3d.Vec3 {
	m := Compose(p)
	t := Translation(p)
	out := make([]math3d.Vec3, len(points))
	for i, pt := range points {
		out[i] = m.MulVec3(pt).Add(t)
	}
	return out
}
