package transform

import (
	"math"
	"testing"

	"github.com/ansipixels/cubeplay/pkg/math3d"
)

func cube() []math3d.Vec3 {
	return []math3d.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
}

func TestApplyIdentity(t *testing.T) {
	pts := cube()
	got := Apply(pts, Defaults())
	for i := range pts {
		if got[i] != pts[i] {
			t.Errorf("vertex %d: got %v, want %v", i, got[i], pts[i])
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	pts := cube()
	p := Defaults()
	p.RotY = 45
	p.TransX = 3
	_ = Apply(pts, p)
	if pts[6] != math3d.V3(1, 1, 1) {
		t.Errorf("input changed: %v", pts[6])
	}
}

func TestComposeOrthogonal(t *testing.T) {
	for _, deg := range []float64{-180, -135, -90, -33.3, 0, 12.5, 90, 171, 180} {
		p := Defaults()
		p.RotX, p.RotY, p.RotZ = deg, deg/2, -deg
		m := Compose(p)
		if got := m.Transpose().Mul(m); !got.ApproxEqual(math3d.Identity3(), 1e-12) {
			t.Errorf("angle %v: Mᵀ·M = %v, want identity", deg, got)
		}
		if d := m.Det(); math.Abs(d-1) > 1e-12 {
			t.Errorf("angle %v: det = %v, want 1", deg, d)
		}
	}
}

func TestComposeOrderScaleThenRotate(t *testing.T) {
	p := Defaults()
	p.ScaleX = 2
	p.RotZ = 90

	got := Apply([]math3d.Vec3{math3d.V3(1, 0, 0)}, p)[0]

	scaleFirst := math3d.RotateZ3(math.Pi / 2).MulVec3(math3d.Diag3(2, 1, 1).MulVec3(math3d.V3(1, 0, 0)))
	rotateFirst := math3d.Diag3(2, 1, 1).MulVec3(math3d.RotateZ3(math.Pi / 2).MulVec3(math3d.V3(1, 0, 0)))

	if !got.ApproxEqual(scaleFirst, 1e-12) {
		t.Errorf("got %v, want scale-then-rotate %v", got, scaleFirst)
	}
	if got.ApproxEqual(rotateFirst, 1e-6) {
		t.Errorf("got %v, matches rotate-then-scale %v", got, rotateFirst)
	}
	if !got.ApproxEqual(math3d.V3(0, 2, 0), 1e-12) {
		t.Errorf("got %v, want (0,2,0)", got)
	}
}

func TestComposeRotationOrder(t *testing.T) {
	// Rx·Ry·Rz: on a column vector Z applies first, X last.
	p := Defaults()
	p.RotX = 90
	p.RotZ = 90
	got := Apply([]math3d.Vec3{math3d.V3(1, 0, 0)}, p)[0]
	// Rz(90): (1,0,0) -> (0,1,0); Rx(90): (0,1,0) -> (0,0,1).
	if !got.ApproxEqual(math3d.V3(0, 0, 1), 1e-12) {
		t.Errorf("got %v, want (0,0,1)", got)
	}
}

func TestApplyTranslationIsUniform(t *testing.T) {
	p := Defaults()
	p.TransX, p.TransY, p.TransZ = 1.5, -2, 4
	pts := cube()
	got := Apply(pts, p)
	for i := range pts {
		if d := got[i].Sub(pts[i]); !d.ApproxEqual(math3d.V3(1.5, -2, 4), 1e-12) {
			t.Errorf("vertex %d shifted by %v", i, d)
		}
	}
}

func TestApplyDeterministic(t *testing.T) {
	p := Params{RotX: 13, RotY: -71, RotZ: 150, ScaleX: 0.4, ScaleY: 2.2, ScaleZ: 1, TransX: 0.5, TransY: 1, TransZ: -3}
	a := Apply(cube(), p)
	b := Apply(cube(), p)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("vertex %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestParamsValuesRoundTrip(t *testing.T) {
	p := Params{RotX: 1, RotY: 2, RotZ: 3, ScaleX: 4, ScaleY: 5, ScaleZ: 6, TransX: 7, TransY: 8, TransZ: 9}
	if got := FromValues(p.Values()); got != p {
		t.Errorf("got %+v, want %+v", got, p)
	}
	if got := p.Get(TransY); got != 8 {
		t.Errorf("Get(TransY) = %v, want 8", got)
	}
	if got := p.With(ScaleZ, 1).ScaleZ; got != 1 {
		t.Errorf("With(ScaleZ, 1).ScaleZ = %v", got)
	}
}

func TestRanges(t *testing.T) {
	tests := []struct {
		p        Param
		name     string
		min, max float64
		def      float64
	}{
		{RotX, "rotX", -180, 180, 0},
		{RotZ, "rotZ", -180, 180, 0},
		{ScaleX, "scaleX", 0.2, 3.0, 1.0},
		{ScaleZ, "scaleZ", 0.2, 3.0, 1.0},
		{TransY, "transY", -4, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.p.Range()
			if r.Name != tt.name || r.Min != tt.min || r.Max != tt.max || r.Default != tt.def {
				t.Errorf("Range() = %+v", r)
			}
			if tt.p.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.p.String(), tt.name)
			}
		})
	}
	if got := ScaleX.Range().Clamp(10); got != 3 {
		t.Errorf("Clamp(10) = %v, want 3", got)
	}
	if got := ScaleX.Range().Clamp(0); got != 0.2 {
		t.Errorf("Clamp(0) = %v, want 0.2", got)
	}
	if len(All()) != NumParams {
		t.Errorf("All() has %d entries", len(All()))
	}
}
