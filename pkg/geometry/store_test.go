package geometry

import (
	"math"
	"testing"

	"github.com/ansipixels/cubeplay/pkg/math3d"
)

func TestNewCubeCorners(t *testing.T) {
	s := NewCube()
	if s.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", s.Len())
	}
	seen := make(map[math3d.Vec3]bool)
	for i, v := range s.Vertices() {
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if math.Abs(c) != 1 {
				t.Errorf("vertex %d = %v, want coordinates in {-1,+1}", i, v)
			}
		}
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("got %d distinct corners, want 8", len(seen))
	}
}

func TestEdgeInvariant(t *testing.T) {
	s := NewCube()
	edges := s.Edges()
	if len(edges) != 12 {
		t.Fatalf("got %d edges, want 12", len(edges))
	}
	for i, d := range s.Degrees() {
		if d != 3 {
			t.Errorf("vertex %d has degree %d, want 3", i, d)
		}
	}
	vs := s.Vertices()
	for _, e := range edges {
		if e[0] < 0 || e[0] >= s.Len() || e[1] < 0 || e[1] >= s.Len() {
			t.Fatalf("edge %v references missing vertex", e)
		}
		// Cube edges join corners that differ in exactly one coordinate.
		d := vs[e[0]].Sub(vs[e[1]])
		nonZero := 0
		for _, c := range []float64{d.X, d.Y, d.Z} {
			if c != 0 {
				nonZero++
			}
		}
		if nonZero != 1 {
			t.Errorf("edge %v is not a cube edge: %v -> %v", e, vs[e[0]], vs[e[1]])
		}
	}
}

func TestSetVertexNoValidation(t *testing.T) {
	s := NewCube()
	p := math3d.V3(250, -1e6, 0.125)
	s.SetVertex(2, p)
	if got := s.Vertex(2); got != p {
		t.Errorf("Vertex(2) = %v, want %v", got, p)
	}
	if got := s.Vertex(3); got != math3d.V3(-1, 1, -1) {
		t.Errorf("Vertex(3) changed to %v", got)
	}
}

func TestVerticesIsCopy(t *testing.T) {
	s := NewCube()
	vs := s.Vertices()
	vs[0] = math3d.V3(9, 9, 9)
	if s.Vertex(0) == vs[0] {
		t.Error("mutating Vertices() result changed the store")
	}
	es := s.Edges()
	es[0] = Edge{7, 7}
	if s.Edges()[0] == es[0] {
		t.Error("mutating Edges() result changed the store")
	}
}

func TestReset(t *testing.T) {
	s := NewCube()
	s.SetVertex(5, math3d.V3(3, 3, 3))
	s.Reset()
	if got := s.Vertex(5); got != math3d.V3(1, -1, 1) {
		t.Errorf("after Reset vertex 5 = %v, want (1,-1,1)", got)
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds(NewCube().Vertices())
	if lo != math3d.V3(-1, -1, -1) || hi != math3d.V3(1, 1, 1) {
		t.Errorf("Bounds = %v..%v", lo, hi)
	}
	lo, hi = Bounds(nil)
	if lo != math3d.Zero3() || hi != math3d.Zero3() {
		t.Errorf("Bounds(nil) = %v..%v", lo, hi)
	}
}
