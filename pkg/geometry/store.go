// Package geometry owns the editable vertex set of the cube and its fixed
// edge topology.
package geometry

import "github.com/ansipixels/cubeplay/pkg/math3d"

// Edge is an unordered pair of vertex indices.
type Edge [2]int

// cubeEdges connects the bottom (z=-1) ring, the top (z=+1) ring and the four
// verticals between them.
var cubeEdges = [...]Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func cubeLocalVertices(half float64) []math3d.Vec3 {
	return []math3d.Vec3{
		{X: -half, Y: -half, Z: -half},
		{X: half, Y: -half, Z: -half},
		{X: half, Y: half, Z: -half},
		{X: -half, Y: half, Z: -half},
		{X: -half, Y: -half, Z: half},
		{X: half, Y: -half, Z: half},
		{X: half, Y: half, Z: half},
		{X: -half, Y: half, Z: half},
	}
}

// Store holds the base (pre-transform) vertices. Vertex identity is its index,
// stable for the lifetime of the store. Vertices are edited only through
// SetVertex and Reset; there are no geometric constraints, so a vertex can be
// dragged anywhere and the cube may become non-convex.
type Store struct {
	vertices []math3d.Vec3
	edges    []Edge
}

// NewCube returns a store holding the axis-aligned cube with corners at ±1.
func NewCube() *Store {
	s := &Store{edges: cubeEdges[:]}
	s.Reset()
	return s
}

// Reset replaces the entire vertex set with the initial cube.
func (s *Store) Reset() {
	s.vertices = cubeLocalVertices(1)
}

// Len returns the number of vertices.
func (s *Store) Len() int {
	return len(s.vertices)
}

// Vertex returns vertex i. It panics if i is out of range.
func (s *Store) Vertex(i int) math3d.Vec3 {
	return s.vertices[i]
}

// SetVertex replaces vertex i with p. Any real vector is accepted.
func (s *Store) SetVertex(i int, p math3d.Vec3) {
	s.vertices[i] = p
}

// Vertices returns a copy of the vertex set in index order.
func (s *Store) Vertices() []math3d.Vec3 {
	out := make([]math3d.Vec3, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// Edges returns a copy of the edge list.
func (s *Store) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// Degrees returns how many edges touch each vertex.
func (s *Store) Degrees() []int {
	deg := make([]int, len(s.vertices))
	for _, e := range s.edges {
		deg[e[0]]++
		deg[e[1]]++
	}
	return deg
}

// Bounds returns the axis-aligned bounding box of the given points.
// An empty slice yields two zero vectors.
func Bounds(points []math3d.Vec3) (lo, hi math3d.Vec3) {
	if len(points) == 0 {
		return
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi
}
