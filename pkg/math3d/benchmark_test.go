package math3d

import (
	"testing"
)

func BenchmarkMat3Mul(b *testing.B) {
	m1 := RotateX3(0.3).Mul(RotateY3(0.5))
	m2 := RotateZ3(0.7).Mul(Diag3(2, 1, 1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat3MulVec3(b *testing.B) {
	m := RotateX3(0.3).Mul(RotateY3(0.5)).Mul(RotateZ3(0.7))
	v := V3(1, 2, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.MulVec3(v)
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := Perspective(math3dFOV, 1.333, 0.1, 100).Mul(LookAt(V3(0, 0, 10), Zero3(), V3(0, 1, 0)))
	v := V3(1, 2, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.MulVec3(v)
	}
}

func BenchmarkViewProjection(b *testing.B) {
	// Same composition the orbit camera does on every projection.
	eye := V3(0, 0, 10)
	target := V3(0, 0, 0)
	up := V3(0, 1, 0)
	view := LookAt(eye, target, up)
	proj := Perspective(math3dFOV, 1.333, 0.1, 100.0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = proj.Mul(view)
	}
}

const math3dFOV = 1.0471975511965976 // 60°
